package services

// Static fallback content served when the row-store is unreachable. The
// public pages must never show an empty gallery or a hard error, so the
// original curated sample set stands in until reads recover.

func fallbackWorks() []WorkView {
	return []WorkView{
		{ID: 1, Title: "Modern Brand Identity", Type: "image", Category: "Branding", Height: "h-64",
			Src:     "https://images.unsplash.com/photo-1558655146-d09347e92766?w=400&h=600&fit=crop",
			Display: "https://images.unsplash.com/photo-1558655146-d09347e92766?w=400&h=600&fit=crop"},
		{ID: 2, Title: "Social Media Campaign", Type: "image", Category: "Social Media", Height: "h-80",
			Src:     "https://images.unsplash.com/photo-1611224923853-80b023f02d71?w=400&h=500&fit=crop",
			Display: "https://images.unsplash.com/photo-1611224923853-80b023f02d71?w=400&h=500&fit=crop"},
		{ID: 3, Title: "Business Card Design", Type: "image", Category: "Print Design", Height: "h-48",
			Src:     "https://images.unsplash.com/photo-1586953208448-b95a79798f07?w=400&h=300&fit=crop",
			Display: "https://images.unsplash.com/photo-1586953208448-b95a79798f07?w=400&h=300&fit=crop"},
		{ID: 4, Title: "Website Hero Graphics", Type: "image", Category: "Web Graphics", Height: "h-96",
			Src:     "https://images.unsplash.com/photo-1561070791-2526d30994b5?w=400&h=700&fit=crop",
			Display: "https://images.unsplash.com/photo-1561070791-2526d30994b5?w=400&h=700&fit=crop"},
		{ID: 5, Title: "Character Illustration", Type: "image", Category: "Illustrations", Height: "h-72",
			Src:     "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400&h=450&fit=crop",
			Display: "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400&h=450&fit=crop"},
		{ID: 6, Title: "Poster Design", Type: "image", Category: "Print Design", Height: "h-80",
			Src:     "https://images.unsplash.com/photo-1541701494587-cb58502866ab?w=400&h=600&fit=crop",
			Display: "https://images.unsplash.com/photo-1541701494587-cb58502866ab?w=400&h=600&fit=crop"},
		{ID: 7, Title: "App Icon Set", Type: "image", Category: "Web Graphics", Height: "h-64",
			Src:     "https://images.unsplash.com/photo-1512486130939-2c4f79935e4f?w=400&h=400&fit=crop",
			Display: "https://images.unsplash.com/photo-1512486130939-2c4f79935e4f?w=400&h=400&fit=crop"},
		{ID: 8, Title: "Brand Guidelines", Type: "image", Category: "Branding", Height: "h-88",
			Src:     "https://images.unsplash.com/photo-1586953208448-b95a79798f07?w=400&h=550&fit=crop",
			Display: "https://images.unsplash.com/photo-1586953208448-b95a79798f07?w=400&h=550&fit=crop"},
		{ID: 9, Title: "Social Media Templates", Type: "image", Category: "Social Media", Height: "h-56",
			Src:     "https://images.unsplash.com/photo-1611224923853-80b023f02d71?w=400&h=350&fit=crop",
			Display: "https://images.unsplash.com/photo-1611224923853-80b023f02d71?w=400&h=350&fit=crop"},
		{ID: 10, Title: "Packaging Design", Type: "image", Category: "Print Design", Height: "h-84",
			Src:     "https://images.unsplash.com/photo-1558655146-d09347e92766?w=400&h=650&fit=crop",
			Display: "https://images.unsplash.com/photo-1558655146-d09347e92766?w=400&h=650&fit=crop"},
		{ID: 11, Title: "Digital Illustration", Type: "image", Category: "Illustrations", Height: "h-76",
			Src:     "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400&h=500&fit=crop",
			Display: "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400&h=500&fit=crop"},
		{ID: 12, Title: "Website Banner", Type: "image", Category: "Web Graphics", Height: "h-48",
			Src:     "https://images.unsplash.com/photo-1561070791-2526d30994b5?w=400&h=300&fit=crop",
			Display: "https://images.unsplash.com/photo-1561070791-2526d30994b5?w=400&h=300&fit=crop"},
	}
}

func fallbackFeaturedWorks() []WorkView {
	return []WorkView{
		{ID: 1, Title: "Naveen Reddy", Type: "image", Category: "Portrait Design", Height: "h-64",
			Src: "/media/NaveenReddy.png", Display: "/media/NaveenReddy.png", Featured: true},
		{ID: 2, Title: "Naveen Reddy Poster", Type: "image", Category: "Poster Design", Height: "h-80",
			Src: "/media/NaveenReddyPoster.png", Display: "/media/NaveenReddyPoster.png", Featured: true},
		{ID: 5, Title: "Vynika Reddy", Type: "image", Category: "Portrait Design", Height: "h-80",
			Src: "/media/VR.png", Display: "/media/VR.png", Featured: true},
		{ID: 6, Title: "Vynika Reddy Collection", Type: "image", Category: "Portrait Series", Height: "h-64",
			Src: "/media/VR1.png", Display: "/media/VR1.png", Featured: true},
	}
}
