package domain

// MandalFlat сентинельный номер квартиры для Mandal Aarti
// Значение хранится как обычная строка ради совместимости со схемой БД,
// особый смысл учитывается только в проверках уникальности
const MandalFlat = "000"

// Business validation constants
const (
	PhoneDigits   = 10
	MaxNameLength = 100
	MaxFlatLength = 10
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
