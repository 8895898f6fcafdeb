package models

// VenueResponse площадка в ответе каталога
type VenueResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SportResponse вид спорта в ответе каталога
type SportResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DateResponse дата со слотами и названием дня недели
type DateResponse struct {
	Date string `json:"date"` // YYYY-MM-DD
	Day  string `json:"day"`  // Monday, Tuesday, ...
}
