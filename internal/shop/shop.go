package shop

import (
	"github.com/wichananm65/kg-market-backend/internal/feed"
	"github.com/wichananm65/kg-market-backend/internal/product"
)

type Shop struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Image        string   `json:"image"`
	Logo         string   `json:"logo"`
	Addresses    []string `json:"addresses"`
	Description  string   `json:"description"`
	Rating       float64  `json:"rating"`
	ReviewCount  int      `json:"reviewCount"`
	VideoCount   int      `json:"videoCount"`
	ProductCount int      `json:"productCount"`
}

// VideoPreview is one tile of the shop's video strip.
type VideoPreview struct {
	EntryID string         `json:"entryId"`
	Type    feed.MediaKind `json:"type"`
	Preview string         `json:"preview"`
	Likes   int            `json:"likes"`
}

// Page is everything the shop screen shows.
type Page struct {
	Shop       Shop              `json:"shop"`
	Videos     []VideoPreview    `json:"videos"`
	Products   []product.Product `json:"products"`
	OtherShops []Shop            `json:"otherShops"`
}

func SampleShops() []Shop {
	return []Shop{
		{
			ID:    "1",
			Name:  "Fashion Store KG",
			Image: "https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=800",
			Logo:  "https://images.unsplash.com/photo-1599305445671-ac291c95aaa9?w=200",
			Addresses: []string{
				"ТЦ Вефа, 2 этаж, бутик 215",
				"ТЦ Дордой Плаза, 1 этаж, бутик 105",
				"ТЦ Азия Молл, 3 этаж, бутик 312",
			},
			Description:  "Модная одежда европейского качества. Официальный представитель ведущих брендов.",
			Rating:       4.8,
			ReviewCount:  342,
			VideoCount:   24,
			ProductCount: 156,
		},
		{
			ID:    "2",
			Name:  "Style Bishkek",
			Image: "https://images.unsplash.com/photo-1567401893414-76b7b1e5a7a5?w=800",
			Logo:  "https://images.unsplash.com/photo-1558769132-cb1aea1f8cf5?w=200",
			Addresses: []string{
				"ТЦ Вефа, 1 этаж, бутик 112",
				"ТЦ Глобус, 2 этаж, бутик 203",
			},
			Description:  "Стильная молодежная одежда по доступным ценам. Новые коллекции каждый месяц.",
			Rating:       4.6,
			ReviewCount:  218,
			VideoCount:   18,
			ProductCount: 89,
		},
	}
}
