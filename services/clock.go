package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NormalizeTime melengkapi jam menjadi format HH:MM:SS dengan zero padding,
// misal "9:30" -> "09:30:00". Format leksikal ini sama urutannya dengan
// urutan kronologis sehingga bisa dibandingkan/di-query sebagai string.
func NormalizeTime(t string) string {
	parts := strings.Split(strings.TrimSpace(t), ":")
	for len(parts) < 3 {
		parts = append(parts, "00")
	}
	for i, p := range parts {
		if len(p) == 1 {
			parts[i] = "0" + p
		}
	}
	return strings.Join(parts[:3], ":")
}

// timeToMinutes mengubah HH:MM:SS menjadi menit sejak tengah malam.
func timeToMinutes(t string) (int, error) {
	parts := strings.Split(t, ":")
	if len(parts) < 2 {
		return 0, fmt.Errorf("invalid time %q", t)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", t)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", t)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q", t)
	}
	return h*60 + m, nil
}

func minutesToTime(m int) string {
	return fmt.Sprintf("%02d:%02d:00", m/60, m%60)
}

// DayOfWeek menghitung hari dalam minggu (0=Minggu..6=Sabtu) untuk tanggal
// YYYY-MM-DD. Dihitung pada jam 12 siang lokal supaya tidak geser satu hari
// karena timezone.
func DayOfWeek(date string) (int, error) {
	d, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return 0, err
	}
	noon := time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.Local)
	return int(noon.Weekday()), nil
}
