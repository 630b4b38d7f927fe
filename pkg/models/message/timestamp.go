package message

import "time"

type TimeStamp string

func NewTimeStamp(t time.Time) TimeStamp {
	return TimeStamp(t.Format(time.DateTime))
}

func (ts TimeStamp) Time() (time.Time, error) {
	return time.ParseInLocation(time.DateTime, string(ts), time.Local)
}
