package create_booking

import (
	"fmt"
	"strings"

	"github.com/tanmaybhole18/Aarti-Booking-Portal/internal/domain"
)

// normalizeAndValidate проверяет входные данные и возвращает нормализованного кандидата
// Валидация выполняется на сервере всегда, независимо от проверок на клиенте
func normalizeAndValidate(req *Request) (*candidate, error) {
	if req.SlotID <= 0 {
		return nil, fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	flat := strings.TrimSpace(req.Flat)
	if flat == "" {
		return nil, fmt.Errorf("%w: flat is required", ErrInvalidInput)
	}
	if len(flat) > domain.MaxFlatLength {
		return nil, fmt.Errorf("%w: flat must be at most %d characters", ErrInvalidInput, domain.MaxFlatLength)
	}

	phone := domain.NormalizePhone(req.Phone)
	if len(phone) != domain.PhoneDigits {
		return nil, fmt.Errorf("%w: phone must contain exactly %d digits", ErrInvalidInput, domain.PhoneDigits)
	}

	return &candidate{
		name:  name,
		flat:  flat,
		phone: phone,
	}, nil
}
