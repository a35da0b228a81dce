package utils

import "math"

// MaxAccuracyMeters adalah batas accuracy GPS (meter) agar lokasi dianggap valid.
// Konstanta tetap, tidak bisa diubah admin.
const MaxAccuracyMeters = 200.0

// CalculateHaversineDistance menghitung jarak antara dua titik koordinat dalam Meter.
func CalculateHaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadius = 6371000 // Jari-jari bumi dalam Meter

	// Konversi ke Radian
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	// Rumus Haversine
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// IsLocationValid memutuskan apakah titik presensi dianggap berada di dalam area.
// Accuracy GPS adalah radius kepercayaan, bukan bias, jadi ditambahkan ke radius
// area yang diizinkan. Input NaN/Inf harus ditolak pemanggil lewat validasi DTO.
func IsLocationValid(distanceM, accuracyM, radiusM, maxAccuracyM float64) bool {
	if accuracyM > maxAccuracyM {
		return false
	}
	return distanceM <= radiusM+accuracyM
}
