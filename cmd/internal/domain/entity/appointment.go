package entity

// Appointment is the only entity in the system. Column names keep the
// historical spreadsheet schema (cliente, telefono, fecha, hora, servicio);
// the order is load-bearing for the sheet backend, where rows are positional.
type Appointment struct {
	ID         int    `gorm:"primaryKey" json:"id,omitempty"`
	ClientName string `gorm:"column:cliente;not null" json:"client_name"`
	Phone      string `gorm:"column:telefono;not null" json:"phone"`
	Date       string `gorm:"column:fecha;not null" json:"date"` // YYYY-MM-DD
	Time       string `gorm:"column:hora;not null" json:"time"`  // HH:MM, 24h
	Service    string `gorm:"column:servicio" json:"service"`
}

func (Appointment) TableName() string {
	return "citas"
}
