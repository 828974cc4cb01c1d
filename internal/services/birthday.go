package services

import "time"

// monthDay projeta uma data no par mês-dia, ignorando o ano. A codificação
// mês*100+dia preserva a ordem natural do calendário.
func monthDay(t time.Time) int {
	return int(t.Month())*100 + t.Day()
}

// BirthdayInWindow informa se o aniversário cai na janela meio-aberta
// [today, today+horizonDays), comparando apenas mês e dia. Janelas que
// atravessam a virada do ano (ex.: 30/12 + 7 dias) são tratadas
// explicitamente: quando o fim da janela fica "antes" do início na escala
// mês-dia, a data pertence à janela se estiver depois do início OU antes
// do fim.
func BirthdayInWindow(birthday time.Time, today time.Time, horizonDays int) bool {
	if horizonDays <= 0 {
		return false
	}

	start := monthDay(today)
	end := monthDay(today.AddDate(0, 0, horizonDays))
	bd := monthDay(birthday)

	if start < end {
		return bd >= start && bd < end
	}
	// Janela cruza 31/12.
	return bd >= start || bd < end
}
