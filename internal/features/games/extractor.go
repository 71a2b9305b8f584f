// Package games — extractor.go разбирает свободный текст админских сообщений.
// Две чистые функции без побочных эффектов и без I/O.
package games

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// Строка суммы: цифры, опциональный пробел, "full" (Full/full)
	amountRe = regexp.MustCompile(`(\d+)\s*[Ff]ull`)
	// Строка игрока: опциональная @ и ник из словесных символов
	playerRe = regexp.MustCompile(`@?(\w+)`)

	// Шаблоны победителя, в порядке приоритета. Первый совпавший выигрывает.
	// ✅ (U+2705) — именно этот символ, админы ставят его вручную.
	winnerRes = []*regexp.Regexp{
		regexp.MustCompile(`@(\w+)\s*✅`),
		regexp.MustCompile(`(\w+)\s*✅`),
		regexp.MustCompile(`✅\s*@(\w+)`),
		regexp.MustCompile(`✅\s*(\w+)`),
	}
)

// ExtractGame разбирает текст сообщения на запись игры.
// Каждая строка — либо сумма («100 Full»), либо ник игрока.
// Если строк с суммой несколько — действует последняя.
// Возвращает (nil, false), если нет игроков или суммы: частичных записей не бывает.
func ExtractGame(text string) (*Game, bool) {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	var players []string
	amount := 0

	for _, line := range lines {
		if strings.Contains(strings.ToLower(line), "full") {
			if m := amountRe.FindStringSubmatch(line); m != nil {
				if n, err := strconv.Atoi(m[1]); err == nil {
					amount = n
				}
			}
		} else if m := playerRe.FindStringSubmatch(line); m != nil {
			players = append(players, m[1])
		}
	}

	if len(players) == 0 || amount <= 0 {
		return nil, false
	}

	return &Game{
		Players:   players,
		Amount:    amount,
		CreatedAt: time.Now(),
		Status:    StatusActive,
	}, true
}

// ExtractWinner ищет в тексте ник, отмеченный галочкой ✅.
// Шаблоны проверяются в фиксированном порядке, первый совпавший выигрывает.
// Возвращает ("", false), если ни один шаблон не совпал.
func ExtractWinner(text string) (string, bool) {
	for _, re := range winnerRes {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1], true
		}
	}
	return "", false
}
