package usecase

import (
	"context"

	"adcamp/internal/core/domain"
	"adcamp/internal/core/port"
)

// CountryUseCase exposes the read-only country catalogue.
type CountryUseCase struct {
	countries port.CountryRepository
}

// NewCountryUseCase wires the country listing.
func NewCountryUseCase(countries port.CountryRepository) *CountryUseCase {
	return &CountryUseCase{countries: countries}
}

func (u *CountryUseCase) List(ctx context.Context) ([]domain.Country, error) {
	return u.countries.FindAll(ctx)
}
