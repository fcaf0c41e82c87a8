// Package validation решает, может ли заявка на регистрацию стать записью пользователя.
package validation

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/kabanov/user-service/internal/entity"
	"github.com/kabanov/user-service/pkg/errors"
)

// DefaultRejectionMessage сообщение по умолчанию при отказе правила допуска
const DefaultRejectionMessage = "User is not authorized to create an account"

const (
	msgUsernameRequired = "must not be null"
	msgUsernameTooShort = "user name should have at least 2 characters"
	msgBirthdateMissing = "Please enter birthdate"
	msgBirthdateNotPast = "must be a past date"
	msgCountryRequired  = "must not be null"
)

// Validator проверяет пополевые ограничения заявки и кросс-полевое
// правило допуска: совершеннолетний резидент Франции
type Validator struct {
	rejectionMessage string
	now              func() time.Time
}

// NewValidator создает валидатор; пустое сообщение заменяется значением по умолчанию
func NewValidator(rejectionMessage string) *Validator {
	if rejectionMessage == "" {
		rejectionMessage = DefaultRejectionMessage
	}
	return &Validator{
		rejectionMessage: rejectionMessage,
		now:              time.Now,
	}
}

// Validate собирает все нарушения, не останавливаясь на первом.
// Возвращает nil, если заявка допустима, APIError вида ValidationFailed
// при нарушениях либо MalformedInput, когда правило допуска не может быть
// вычислено из-за отсутствующих country или birthdate.
func (v *Validator) Validate(dto entity.UserDTO) error {
	var violations []errors.Violation

	switch {
	case dto.Username == "":
		violations = append(violations, errors.Violation{Field: "username", Message: msgUsernameRequired})
	case utf8.RuneCountInString(dto.Username) < 2:
		violations = append(violations, errors.Violation{Field: "username", Message: msgUsernameTooShort})
	}

	now := v.now()

	birthdatePresent := !dto.Birthdate.IsZero()
	if !birthdatePresent {
		violations = append(violations, errors.Violation{Field: "birthdate", Message: msgBirthdateMissing})
	} else if !dto.Birthdate.Time.Before(startOfDay(now)) {
		violations = append(violations, errors.Violation{Field: "birthdate", Message: msgBirthdateNotPast})
	}

	countryPresent := dto.Country != ""
	if !countryPresent {
		violations = append(violations, errors.Violation{Field: "country", Message: msgCountryRequired})
	}

	// Предусловие правила допуска — наличие обоих значений,
	// а не успех их пополевых проверок
	if !birthdatePresent || !countryPresent {
		return errors.NewMalformedInputError(violations)
	}

	if violation := v.checkEligibility(dto.Country, dto.Birthdate.Time, now); violation != nil {
		violations = append(violations, *violation)
	}

	if len(violations) > 0 {
		return errors.NewValidationError(violations)
	}
	return nil
}

// checkEligibility кросс-полевое правило: страна Франция (без учета регистра)
// и возраст строго больше 18 полных лет
func (v *Validator) checkEligibility(country string, birthdate, now time.Time) *errors.Violation {
	if strings.EqualFold(country, "FRANCE") && ageInYears(birthdate, now) > 18 {
		return nil
	}
	return &errors.Violation{Field: "user", Message: v.rejectionMessage}
}

// ageInYears полных лет между датой рождения и текущим моментом.
// День рождения, еще не наступивший в этом году, не засчитывается.
func ageInYears(birthdate, now time.Time) int {
	years := now.Year() - birthdate.Year()
	if birthdate.AddDate(years, 0, 0).After(now) {
		years--
	}
	return years
}

func startOfDay(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
