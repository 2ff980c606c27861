// pkg/utils/roman.go
package utils

import "strings"

var (
	romanValues  = []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	romanSymbols = []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}
)

// ToRoman конвертирует целое число в римское. Non-positive numbers give "".
func ToRoman(num int) string {
	if num <= 0 {
		return ""
	}
	var roman strings.Builder
	for i := 0; i < len(romanValues); i++ {
		for num >= romanValues[i] {
			roman.WriteString(romanSymbols[i])
			num -= romanValues[i]
		}
	}
	return roman.String()
}

// WaveLabel formats "current/total" in roman numerals; "-" before the first wave.
func WaveLabel(wave, total int) string {
	if wave <= 0 {
		return "-/" + ToRoman(total)
	}
	return ToRoman(wave) + "/" + ToRoman(total)
}
