package schedule

import "time"

// Janela de atendimento dentro de um dia, em "HH:mm" local.
type Window struct {
	Start string
	End   string
}

// BusinessHours mapeia cada dia da semana para suas janelas de atendimento.
// Dia ausente = fechado.
type BusinessHours struct {
	Days map[time.Weekday][]Window
	Step time.Duration
}

// DefaultBusinessHours é a grade da barbearia: segunda a sexta com pausa de
// almoço, sábado só de manhã, domingo fechado. Slots de 45 minutos.
func DefaultBusinessHours() BusinessHours {
	weekday := []Window{
		{Start: "09:00", End: "12:00"},
		{Start: "13:00", End: "19:30"},
	}

	return BusinessHours{
		Days: map[time.Weekday][]Window{
			time.Monday:    weekday,
			time.Tuesday:   weekday,
			time.Wednesday: weekday,
			time.Thursday:  weekday,
			time.Friday:    weekday,
			time.Saturday:  {{Start: "09:00", End: "12:00"}},
		},
		Step: 45 * time.Minute,
	}
}

// Template gera os horários nominais de um dia a partir da grade, sem olhar
// agendamentos. Determinístico, nada é persistido. Dia sem janela (domingo)
// retorna vazio.
func (bh BusinessHours) Template(date time.Time) []time.Time {
	windows := bh.Days[date.Weekday()]
	if len(windows) == 0 {
		return nil
	}

	loc := date.Location()

	parseHM := func(hm string) time.Time {
		t, _ := time.Parse("15:04", hm)
		return time.Date(
			date.Year(), date.Month(), date.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		)
	}

	var slots []time.Time
	for _, w := range windows {
		start := parseHM(w.Start)
		end := parseHM(w.End)

		// inclui o slot que cai exatamente no fim da janela
		for cur := start; cur.Before(end) || cur.Equal(end); cur = cur.Add(bh.Step) {
			slots = append(slots, cur)
		}
	}

	return slots
}
