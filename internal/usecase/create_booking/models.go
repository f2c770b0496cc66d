package create_booking

import (
	"time"

	"github.com/tanmaybhole18/Aarti-Booking-Portal/internal/domain"
)

// Request модель запроса на бронирование слота
type Request struct {
	SlotID int64  // ID слота аарти
	Name   string // Имя жителя
	Flat   string // Номер квартиры ("000" - Mandal Aarti)
	Phone  string // Телефон, нормализуется до 10 цифр
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64            // ID созданного бронирования
	SlotID    int64            // ID слота
	Date      time.Time        // Дата слота
	TimeOfDay domain.TimeOfDay // Аарти слота
	Name      string           // Имя жителя
	Flat      string           // Номер квартиры
	Phone     string           // Нормализованный телефон
	CreatedAt time.Time        // Время создания
}

// candidate нормализованные данные бронирования после валидации
type candidate struct {
	name  string
	flat  string
	phone string
}
