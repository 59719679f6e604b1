package feed

// SampleEntries is the static feed shipped with the service.
func SampleEntries() []Entry {
	return []Entry{
		{
			ID:        "1",
			Type:      MediaVideo,
			MediaURL:  "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
			Thumbnail: ptrString("https://images.unsplash.com/photo-1515886657613-9f3515b0c78f?w=400&auto=format&fit=crop"),
			Product:   ProductSummary{ID: "1", Name: "Стильная куртка", Price: 4500, Brand: "Fashion Brand"},
			Author: Author{
				Name:   "Модный блогер",
				Avatar: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=150&auto=format&fit=crop",
			},
			Likes: 1234, Comments: 89, Shares: 45,
		},
		{
			ID:       "2",
			Type:     MediaImage,
			MediaURL: "https://images.unsplash.com/photo-1523381210434-271e8be1f52b?w=800&auto=format&fit=crop",
			Product:  ProductSummary{ID: "2", Name: "Модные кроссовки", Price: 3200, Brand: "Sport Style"},
			Author: Author{
				Name:   "Стиль Бишкек",
				Avatar: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&auto=format&fit=crop",
			},
			Likes: 2456, Comments: 156, Shares: 78,
		},
		{
			ID:        "3",
			Type:      MediaVideo,
			MediaURL:  "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4",
			Thumbnail: ptrString("https://images.unsplash.com/photo-1576566588028-4147f3842f27?w=400&auto=format&fit=crop"),
			Product:   ProductSummary{ID: "3", Name: "Платье вечернее", Price: 5800, Brand: "Elegant"},
			Author: Author{
				Name:   "Fashion KG",
				Avatar: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&auto=format&fit=crop",
			},
			Likes: 3421, Comments: 234, Shares: 123,
		},
		{
			ID:       "4",
			Type:     MediaImage,
			MediaURL: "https://images.unsplash.com/photo-1525507119028-ed4c629a60a3?w=800&auto=format&fit=crop",
			Product:  ProductSummary{ID: "4", Name: "Сумка кожаная", Price: 2800, Brand: "Leather Co"},
			Author: Author{
				Name:   "Аксессуары KG",
				Avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&auto=format&fit=crop",
			},
			Likes: 1890, Comments: 92, Shares: 34,
		},
		{
			ID:       "5",
			Type:     MediaImage,
			MediaURL: "https://images.unsplash.com/photo-1591047139829-d91aecb6caea?w=800&auto=format&fit=crop",
			Product:  ProductSummary{ID: "5", Name: "Джинсы классические", Price: 3600, Brand: "Denim Style"},
			Author: Author{
				Name:   "Fashion Trends",
				Avatar: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=150&auto=format&fit=crop",
			},
			Likes: 2134, Comments: 145, Shares: 67,
		},
	}
}
