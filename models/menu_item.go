package models

import (
	"errors"
	"fmt"
)

type Language string

const (
	LangEnglish Language = "en"
	LangArabic  Language = "ar"
)

type Currency string

const (
	CurrencyUSD Currency = "usd"
	CurrencyJOD Currency = "jod"
)

func ParseCurrency(s string) (Currency, error) {
	switch Currency(s) {
	case CurrencyUSD, CurrencyJOD:
		return Currency(s), nil
	}
	return "", fmt.Errorf("unknown currency %q", s)
}

// LocalizedText holds the same text in both supported languages.
// Both entries are required for every displayed string.
type LocalizedText struct {
	En string `json:"en"`
	Ar string `json:"ar"`
}

func (t LocalizedText) In(lang Language) string {
	if lang == LangArabic {
		return t.Ar
	}
	return t.En
}

func (t LocalizedText) Complete() bool {
	return t.En != "" && t.Ar != ""
}

// Price carries the amount in every supported currency. Menu items are
// priced in both currencies up front; there is no conversion at runtime.
type Price struct {
	USD float64 `json:"usd"`
	JOD float64 `json:"jod"`
}

func (p Price) In(cur Currency) float64 {
	if cur == CurrencyJOD {
		return p.JOD
	}
	return p.USD
}

type MenuCategory string

const (
	CategoryAppetizers  MenuCategory = "Appetizers"
	CategoryMainCourses MenuCategory = "Main Courses"
	CategoryDesserts    MenuCategory = "Desserts"
	CategoryDrinks      MenuCategory = "Drinks"
)

func (c MenuCategory) Valid() bool {
	switch c {
	case CategoryAppetizers, CategoryMainCourses, CategoryDesserts, CategoryDrinks:
		return true
	}
	return false
}

type MenuItem struct {
	ID          string        `json:"id"`
	Name        LocalizedText `json:"name"`
	Description LocalizedText `json:"description"`
	Price       Price         `json:"price"`
	Category    MenuCategory  `json:"category"`
	Image       string        `json:"image"`
}

func (m MenuItem) Validate() error {
	if m.ID == "" {
		return errors.New("menu item id is required")
	}
	if !m.Name.Complete() {
		return errors.New("menu item name must be set in both languages")
	}
	if !m.Description.Complete() {
		return errors.New("menu item description must be set in both languages")
	}
	if m.Price.USD < 0 || m.Price.JOD < 0 {
		return errors.New("menu item price must not be negative")
	}
	if !m.Category.Valid() {
		return fmt.Errorf("unknown menu category %q", m.Category)
	}
	return nil
}
