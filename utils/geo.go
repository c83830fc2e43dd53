package utils

import "math"

const earthRadiusKm = 6371.0

// Haversine ระยะทางระหว่างสองพิกัดเป็นกิโลเมตร
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	rad := func(d float64) float64 { return d * math.Pi / 180 }

	dLat := rad(lat2 - lat1)
	dLng := rad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}

// DeliveryFeeFor ค่าส่งตามระยะ: เหมา base ในรัศมี freeKm แรก
// เกินจากนั้นคิด perKm ต่อกิโล (ปัดเศษกิโลขึ้น)
func DeliveryFeeFor(distanceKm float64, base, perKm int64, freeKm float64) int64 {
	if distanceKm <= freeKm {
		return base
	}
	extra := int64(math.Ceil(distanceKm - freeKm))
	return base + extra*perKm
}
