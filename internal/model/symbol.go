package model

const SymbolCherry = "cherry"

type Symbol struct {
	Name string
	Src  string
}

// symbols - фиксированный упорядоченный набор из 7 символов
var symbols = []Symbol{
	{Name: SymbolCherry, Src: "https://www.svgrepo.com/show/499364/cherry.svg"},
	{Name: "lemon", Src: "https://www.svgrepo.com/show/499365/lemon.svg"},
	{Name: "orange", Src: "https://www.svgrepo.com/show/499366/orange.svg"},
	{Name: "grape", Src: "https://www.svgrepo.com/show/499363/grape.svg"},
	{Name: "bell", Src: "https://www.svgrepo.com/show/499362/bell.svg"},
	{Name: "bar", Src: "https://www.svgrepo.com/show/499361/bar.svg"},
	{Name: "seven", Src: "https://www.svgrepo.com/show/499367/seven.svg"},
}

// Symbols возвращает копию набора символов
func Symbols() []Symbol {
	out := make([]Symbol, len(symbols))
	copy(out, symbols)
	return out
}

// SymbolIndex - позиция символа в наборе, -1 если символ неизвестен
func SymbolIndex(name string) int {
	for i, s := range symbols {
		if s.Name == name {
			return i
		}
	}
	return -1
}

func SymbolByName(name string) (Symbol, bool) {
	i := SymbolIndex(name)
	if i < 0 {
		return Symbol{}, false
	}
	return symbols[i], true
}

type Outcome string

const (
	OutcomeJackpot  Outcome = "jackpot"
	OutcomeBigWin   Outcome = "bigWin"
	OutcomeSmallWin Outcome = "smallWin"
	OutcomeLose     Outcome = "lose"
	// Транспортная ошибка сетевого клиента
	OutcomeError Outcome = "error"
	// Пользователь уже использовал свою игру
	OutcomePlayed Outcome = "played"
)

var codePrefixes = map[Outcome]string{
	OutcomeJackpot:  "JP",
	OutcomeBigWin:   "BW",
	OutcomeSmallWin: "SW",
}

func (o Outcome) IsWin() bool {
	_, ok := codePrefixes[o]
	return ok
}

// CodePrefix - префикс кода выигрыша, пустая строка для проигрыша
func (o Outcome) CodePrefix() string {
	return codePrefixes[o]
}
