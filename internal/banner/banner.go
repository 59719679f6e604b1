package banner

// Banner is a promotional hero card on the home screen. Image is a media
// locator resolved for clients by the service.
type Banner struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle"`
	Image    string  `json:"image"`
	Discount *string `json:"discount,omitempty"`
}

func SampleBanners() []Banner {
	discount := "50%"
	return []Banner{
		{
			ID:       "1",
			Title:    "Зимняя распродажа",
			Subtitle: "Скидки до 50%",
			Image:    "banners/hero-banner.png",
			Discount: &discount,
		},
	}
}
