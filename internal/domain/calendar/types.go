package calendar

type DayStatus string

const (
	StatusAvailable    DayStatus = "available"
	StatusNotAvailable DayStatus = "not_available"
	StatusBooked       DayStatus = "booked"
)

// DefaultStatus applies to days without an explicit entry: unset days are
// implicitly open for booking.
const DefaultStatus = StatusAvailable

func (s DayStatus) String() string {
	return string(s)
}

func (s DayStatus) IsValid() bool {
	switch s {
	case StatusAvailable, StatusNotAvailable, StatusBooked:
		return true
	default:
		return false
	}
}
