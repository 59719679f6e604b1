package shoppingmall

// Coordinates place a mall on the map tab.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Mall is a shopping centre listed in the mall tab.
type Mall struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Image       string       `json:"image"`
	Address     string       `json:"address"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Schedule    string       `json:"schedule"`
	Phone       string       `json:"phone"`
	Promotions  []string     `json:"promotions"`
}

func SampleMalls() []Mall {
	return []Mall{
		{
			ID:          "1",
			Name:        "Вефа Центр",
			Image:       "https://images.unsplash.com/photo-1519567241046-7f570eee3ce6?w=800",
			Address:     "пр. Чуй 155/1, Бишкек",
			Coordinates: &Coordinates{Latitude: 42.8573, Longitude: 74.6096},
			Schedule:    "Пн-Вс: 10:00 - 22:00",
			Phone:       "+996 312 123 456",
			Promotions: []string{
				"Скидки до 50% на весь ассортимент",
				"Акция 2+1 на детскую одежду",
				"Бесплатная доставка при заказе от 3000 сом",
			},
		},
		{
			ID:          "2",
			Name:        "Дордой Плаза",
			Image:       "https://images.unsplash.com/photo-1555529669-e69e7aa0ba9a?w=800",
			Address:     "ул. Ибраимова 115, Бишкек",
			Coordinates: &Coordinates{Latitude: 42.8746, Longitude: 74.6178},
			Schedule:    "Пн-Вс: 09:00 - 21:00",
			Phone:       "+996 312 987 654",
			Promotions: []string{
				"Новая коллекция весна-лето 2026",
				"Скидка 30% на аксессуары",
			},
		},
	}
}
