package models

type Destination struct {
	ID          int64  `db:"destination_id" json:"destination_id"`
	City        string `db:"city" json:"city" validate:"required"`
	Country     string `db:"country" json:"country" validate:"required"`
	AirportCode string `db:"airport_code" json:"airport_code" validate:"required"`
}

func (d *Destination) Validate() error {
	return validate.Struct(d)
}
