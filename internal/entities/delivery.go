package entities

import "time"

type Delivery struct {
	ID          int64
	PackageID   int64
	AgentID     int64
	Latitude    float64
	Longitude   float64
	Address     string
	PhotoPath   string
	Notes       string
	DeliveredAt time.Time
}

type DeliveryModify struct {
	PackageID   *int64
	AgentID     *int64
	Latitude    *float64
	Longitude   *float64
	Address     *string
	PhotoPath   *string
	Notes       *string
	DeliveredAt *time.Time
}

// DeliverySubmission входные данные подтверждения доставки от агента.
type DeliverySubmission struct {
	PackageID int64
	AgentID   int64
	Latitude  float64
	Longitude float64
	Notes     string
	Photo     Photo
}

type Photo struct {
	FileName string
	Content  []byte
}

// StoredPhoto путь сохранённого фото и mtime именно этой записи.
type StoredPhoto struct {
	Path    string
	ModTime time.Time
}

type DeliveryReceipt struct {
	DeliveryID int64
	Address    string
	PhotoPath  string
}

// DeliveryRecord строка истории: доставка + номер отслеживания + имя агента.
type DeliveryRecord struct {
	Delivery
	TrackingNumber string
	AgentName      string
}

type DeliveryFilter struct {
	AgentID *int64
}
