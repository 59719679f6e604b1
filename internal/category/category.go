package category

// Category is a catalog section shown as a chip on the home screen and as a
// card in the catalog tab. Icon is a Material icon name.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Count int    `json:"count"`
}

func SampleCategories() []Category {
	return []Category{
		{ID: "1", Name: "Женщинам", Icon: "woman", Count: 245},
		{ID: "2", Name: "Мужчинам", Icon: "man", Count: 189},
		{ID: "3", Name: "Детям", Icon: "child-care", Count: 156},
		{ID: "4", Name: "Аксессуары", Icon: "watch", Count: 98},
		{ID: "5", Name: "Обувь", Icon: "checkroom", Count: 134},
		{ID: "6", Name: "Спорт", Icon: "fitness-center", Count: 87},
	}
}
