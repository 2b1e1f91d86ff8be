package utils

// 에어코리아 대기질 등급: 1(좋음) 2(보통) 3(나쁨) 4(매우나쁨)

// GetPM10Grade 미세먼지(PM10) 농도를 등급으로 분류
func GetPM10Grade(value float64) string {
	switch {
	case value <= 30:
		return "1"
	case value <= 80:
		return "2"
	case value <= 150:
		return "3"
	default:
		return "4"
	}
}

// GetPM25Grade 초미세먼지(PM2.5) 농도를 등급으로 분류
func GetPM25Grade(value float64) string {
	switch {
	case value <= 15:
		return "1"
	case value <= 35:
		return "2"
	case value <= 75:
		return "3"
	default:
		return "4"
	}
}
