package service

import "guitaracademy/internal/entities"

var lessonOfferings = []entities.LessonOffering{
	{
		ID:            "private-30",
		Title:         "30-Minute Private Lesson",
		BasePrice:     PriceForDuration(30),
		DurationLabel: "30 minutes",
		Description:   "One-on-one instruction tailored to your goals",
		Features: []string{
			"Personalized lesson plan",
			"Focus on your specific goals",
			"Professional feedback",
		},
	},
	{
		ID:            "private-60",
		Title:         "60-Minute Private Lesson",
		BasePrice:     PriceForDuration(60),
		DurationLabel: "60 minutes",
		Description:   "One-on-one instruction tailored to your goals",
		Features: []string{
			"Personalized lesson plan",
			"Focus on your specific goals",
			"Professional feedback",
			"Practice materials included",
			"Email support between lessons",
		},
	},
}

// ListLessons returns the static lesson catalog.
func ListLessons() []entities.LessonOffering {
	return lessonOfferings
}
