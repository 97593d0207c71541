package constant

import (
	"time"
)

const (
	CacheParentKey = "futsal-booking"
)

const (
	RequestParamID = "id"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

const (
	CourtTypeIndoor  = "indoor"
	CourtTypeOutdoor = "outdoor"
	CourtTypeVIP     = "vip"
)

const (
	EventBookingCreated = "booking.created"
	EventBookingUpdated = "booking.updated"
	EventBookingDeleted = "booking.deleted"
)

const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
)

const (
	FullDateFormat = time.RFC3339
	DateFormat     = "2006-01-02"
	HoursFormat    = "15:04"

	SecondsPerHour     = 3600
	MinutesPerHour     = 60
	MicrosecondsPerSec = 1000000
)

const (
	UserRoleAdmin = "9"
)

const (
	JwtFieldUser  = "username"
	JwtFieldLevel = "level"
)
