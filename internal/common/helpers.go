// Package common содержит общие утилиты, используемые во всём проекте.
// Сюда входят: форматирование сумм и чисел, работа с временем.
package common

import (
	"fmt"
	"time"
)

// FormatCurrency форматирует сумму в строку с разделителями тысяч
// и двумя знаками после запятой.
//
// Примеры:
//
//	FormatCurrency(150)       → "150.00"
//	FormatCurrency(1234567.5) → "1,234,567.50"
//	FormatCurrency(-50)       → "-50.00"
func FormatCurrency(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	// Округляем до копеек и отделяем целую часть от дробной
	cents := int64(amount*100 + 0.5)
	whole := cents / 100
	frac := cents % 100

	out := fmt.Sprintf("%s.%02d", FormatCount(whole), frac)
	if negative {
		return "-" + out
	}
	return out
}

// FormatCount форматирует целое число с разделителями тысяч (запятыми).
// Пример: FormatCount(2350) → "2,350"
func FormatCount(n int64) string {
	if n < 0 {
		return "-" + FormatCount(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}

	// Рекурсивно добавляем разделители
	rest := n / 1000
	last := n % 1000

	return fmt.Sprintf("%s,%03d", FormatCount(rest), last)
}

// FormatDateTime форматирует время в формат "2006-01-02 15:04:05".
// Используется для отображения дат транзакций и отчётов.
func FormatDateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
