package models

type Pilot struct {
	ID              int64  `db:"pilot_id" json:"pilot_id"`
	Name            string `db:"name" json:"name" validate:"required"`
	LicenseID       string `db:"license_id" json:"license_id" validate:"required"`
	YearsExperience *int   `db:"years_experience" json:"years_experience,omitempty" validate:"omitempty,min=0"`
}

func (p *Pilot) Validate() error {
	return validate.Struct(p)
}

// license_id uniqueness is handled on DB level:
/*
CREATE TABLE pilots (
    pilot_id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    license_id TEXT UNIQUE NOT NULL,
    years_experience INTEGER
);
*/
