package domain

// Placeholder dipakai ketika elemen HTML yang dicari tidak ada.
const (
	NoTitle       = "No Title"
	NoLink        = "#"
	NoDate        = "No Date"
	NoDescription = "No Description"
)

// Article adalah ringkasan satu berita dari halaman daftar.
type Article struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Date        string `json:"date"`
	Description string `json:"description"`
}
