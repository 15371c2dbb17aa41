package catalog

// NewDefault returns the built-in catalog.
func NewDefault() *Catalog {
	return &Catalog{
		CaptionRules: []Rule{
			{"nature", Sunset},
			{"landscape", Sunset},
			{"sunset", Sunset},
			{"dog", Dog},
			{"pet", Dog},
			{"puppy", Dog},
			{"kitchen", Kitchen},
			{"home", Kitchen},
			{"city", City},
			{"street", City},
			{"lake", Lake},
			{"beach", Beach},
			{"cooking", Cooking},
			{"recipe", Cooking},
			{"forest", Nature},
		},
		ImageRules: []Rule{
			{"sunset", Sunset},
			{"mountain", Sunset},
			{"dog", Dog},
			{"puppy", Dog},
			{"pet", Dog},
			{"kitchen", Kitchen},
			{"home", Kitchen},
			{"city", City},
			{"street", City},
			{"rain", City},
			{"lake", Lake},
			{"beach", Beach},
			{"ocean", Beach},
		},
		AnimatedRules: []Rule{
			{"beach", Beach},
			{"ocean", Beach},
			{"wave", Beach},
			{"cook", Cooking},
			{"kitchen", Cooking},
			{"food", Cooking},
			{"forest", Nature},
			{"nature", Nature},
			{"tree", Nature},
			{"city", City},
			{"street", City},
		},
		Captions: map[Category]string{
			Sunset:  "A beautiful sunset over the mountains with vibrant orange and purple hues.",
			Dog:     "A cute golden retriever puppy playing with a red ball in a green field.",
			Kitchen: "A modern kitchen with granite countertops and stainless steel appliances.",
			City:    "A crowded city street with people walking under colorful umbrellas in the rain.",
			Lake:    "A serene lake surrounded by pine trees reflecting the clear blue sky.",
			Beach:   "Waves rolling onto a sandy beach under a bright afternoon sun.",
			Cooking: "A chef chopping fresh vegetables on a wooden board next to a simmering pot.",
			Nature:  "Sunlight filtering through tall trees in a quiet green forest.",
			Default: "A serene lake surrounded by pine trees reflecting the clear blue sky.",
		},
		Summaries: map[Category]string{
			Beach:   "The video follows the shoreline as waves break and people stroll along the sand.",
			Cooking: "The video shows a meal being prepared step by step, from chopping to plating.",
			Nature:  "The video pans slowly through a forest, lingering on leaves, light and wildlife.",
			City:    "The video captures busy streets, traffic and pedestrians over the course of a day.",
			Dog:     "The video shows a playful dog running, fetching and resting in the grass.",
			Default: "The video shows a short everyday scene with steady camera movement.",
		},
		SampleImages: map[Category]string{
			Sunset:  "sunset.jpeg",
			Dog:     "dog.jpeg",
			Kitchen: "kitchen.jpeg",
			City:    "citystreet.jpeg",
			Lake:    "lake.jpeg",
			Default: "lake.jpeg",
		},
		AnimatedVideos: map[Category]string{
			Beach:   "https://videos.pexels.com/video-files/1093662/1093662-hd_1920_1080_30fps.mp4",
			Cooking: "https://videos.pexels.com/video-files/3195394/3195394-uhd_2560_1440_25fps.mp4",
			Nature:  "https://videos.pexels.com/video-files/856973/856973-hd_1920_1080_25fps.mp4",
			City:    "https://videos.pexels.com/video-files/1721294/1721294-hd_1920_1080_25fps.mp4",
			Default: "https://videos.pexels.com/video-files/3571264/3571264-uhd_2560_1440_30fps.mp4",
		},
	}
}
