package update_booking

import (
	"time"

	"github.com/tanmaybhole18/Aarti-Booking-Portal/internal/domain"
)

// Request модель запроса на редактирование бронирования
type Request struct {
	BookingID int64  // ID редактируемого бронирования
	Name      string // Новое имя жителя
	Flat      string // Новый номер квартиры ("000" - Mandal Aarti)
	Phone     string // Новый телефон, нормализуется до 10 цифр
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID        int64            // ID бронирования
	SlotID    int64            // ID слота (неизменяемый)
	Date      time.Time        // Дата слота
	TimeOfDay domain.TimeOfDay // Аарти слота
	Name      string           // Имя жителя
	Flat      string           // Номер квартиры
	Phone     string           // Нормализованный телефон
	CreatedAt time.Time        // Время создания (неизменяемое)
}

// candidate нормализованные данные бронирования после валидации
type candidate struct {
	name  string
	flat  string
	phone string
}
