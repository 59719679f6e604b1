package product

// SampleProducts returns the static catalog the storefront ships with.
func SampleProducts() []Product {
	return []Product{
		{
			ID:            "1",
			Name:          "Платье вечернее",
			Price:         4500,
			OriginalPrice: ptrInt(9000),
			Discount:      ptrInt(50),
			Image:         "https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=400&h=500&fit=crop",
			Category:      "Женщинам",
			Brand:         "Bishkek Fashion",
			Rating:        4.8,
			ReviewCount:   124,
			Sizes:         []string{"S", "M", "L"},
			Colors:        []string{"#DC143C", "#1A0000", "#FFD700"},
			IsSale:        true,
		},
		{
			ID:          "2",
			Name:        "Куртка зимняя",
			Price:       8900,
			Image:       "https://images.unsplash.com/photo-1551028719-00167b16eac5?w=400&h=500&fit=crop",
			Category:    "Мужчинам",
			Brand:       "Ala-Too Style",
			Rating:      4.6,
			ReviewCount: 89,
			Sizes:       []string{"M", "L", "XL"},
			Colors:      []string{"#1A0000", "#333333"},
			IsNew:       true,
		},
		{
			ID:          "3",
			Name:        "Джинсы классические",
			Price:       3200,
			Image:       "https://images.unsplash.com/photo-1542272604-787c3835535d?w=400&h=500&fit=crop",
			Category:    "Женщинам",
			Brand:       "Denim KG",
			Rating:      4.7,
			ReviewCount: 156,
			Sizes:       []string{"26", "28", "30", "32"},
			Colors:      []string{"#4169E1", "#1A1A1A"},
		},
		{
			ID:            "4",
			Name:          "Свитер шерстяной",
			Price:         2800,
			OriginalPrice: ptrInt(3500),
			Discount:      ptrInt(20),
			Image:         "https://images.unsplash.com/photo-1576566588028-4147f3842f27?w=400&h=500&fit=crop",
			Category:      "Женщинам",
			Brand:         "Warm KG",
			Rating:        4.5,
			ReviewCount:   67,
			Sizes:         []string{"S", "M", "L", "XL"},
			Colors:        []string{"#DC143C", "#FFFFFF", "#FFD700"},
			IsSale:        true,
		},
		{
			ID:          "5",
			Name:        "Пальто демисезонное",
			Price:       12000,
			Image:       "https://images.unsplash.com/photo-1539533018447-63fcce2678e3?w=400&h=500&fit=crop",
			Category:    "Мужчинам",
			Brand:       "Elite Fashion",
			Rating:      4.9,
			ReviewCount: 203,
			Sizes:       []string{"M", "L", "XL"},
			Colors:      []string{"#8B4513", "#1A0000"},
			IsNew:       true,
		},
		{
			ID:          "6",
			Name:        "Детский комбинезон",
			Price:       2400,
			Image:       "https://images.unsplash.com/photo-1622290291468-a28f7a7dc6a8?w=400&h=500&fit=crop",
			Category:    "Детям",
			Brand:       "Kids Joy",
			Rating:      4.8,
			ReviewCount: 112,
			Sizes:       []string{"2-3", "4-5", "6-7"},
			Colors:      []string{"#DC143C", "#FFD700", "#4169E1"},
		},
	}
}
