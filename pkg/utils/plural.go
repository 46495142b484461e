package utils

// Plural escolhe a forma da palavra conforme a declinação russa:
// 1, 21, 31... -> one; 2-4, 22-24... -> few; 0, 5-20, 25-30... -> many.
func Plural(n int, one, few, many string) string {
	if n < 0 {
		n = -n
	}

	if mod100 := n % 100; mod100 >= 11 && mod100 <= 14 {
		return many
	}

	switch n % 10 {
	case 1:
		return one
	case 2, 3, 4:
		return few
	default:
		return many
	}
}

// HoursUnit retorna a unidade "час" declinada para n
func HoursUnit(n int) string {
	return Plural(n, "час", "часа", "часов")
}
