package catalog

const placeholderImage = "/placeholder.svg?height=200&width=200"

const sampleLink = "https://www.shivacruz.com"

// Sample returns the built-in directory listing.
func Sample() []Tool {
	return []Tool{
		{ID: 1, Name: "TensorFlow", Category: "Machine Learning", Description: "Open-source machine learning framework", ImageRef: placeholderImage, Featured: true, Popularity: 95, Link: sampleLink},
		{ID: 2, Name: "PyTorch", Category: "Machine Learning", Description: "Open source machine learning library", ImageRef: placeholderImage, Featured: true, Popularity: 90, Link: sampleLink},
		{ID: 3, Name: "NLTK", Category: "Natural Language Processing", Description: "Leading platform for building Python programs to work with human language data", ImageRef: placeholderImage, Popularity: 80, Link: sampleLink},
		{ID: 4, Name: "OpenCV", Category: "Computer Vision", Description: "Open source computer vision and machine learning software library", ImageRef: placeholderImage, Featured: true, Popularity: 85, Link: sampleLink},
		{ID: 5, Name: "ROS", Category: "Robotics", Description: "Flexible framework for writing robot software", ImageRef: placeholderImage, Popularity: 75, Link: sampleLink},
		{ID: 6, Name: "Pandas", Category: "Data Analysis", Description: "Fast, powerful, flexible and easy to use open source data analysis and manipulation tool", ImageRef: placeholderImage, Popularity: 88, Link: sampleLink},
		{ID: 7, Name: "DeepSpeech", Category: "Speech Recognition", Description: "Open-source Speech-To-Text engine", ImageRef: placeholderImage, Popularity: 70, Link: sampleLink},
		{ID: 8, Name: "Scikit-learn", Category: "Machine Learning", Description: "Machine learning library for Python", ImageRef: placeholderImage, Featured: true, Popularity: 92, Link: sampleLink},
	}
}
