package model

import "errors"

var (
	ErrHuntNotFound    = errors.New("hunt not found")
	ErrSlotNotFound    = errors.New("slot not found")
	ErrProfileNotFound = errors.New("profile not found")

	// Повторный прогноз на тот же хант от того же пользователя
	ErrGuessExists = errors.New("guess already exists for this hunt")
	// Прогнозы принимаются только до завершения ханта
	ErrGuessingClosed = errors.New("guessing is closed for this hunt")

	// Победитель определяется только по зафиксированному итоговому балансу
	ErrNoEndingBalance = errors.New("hunt has no ending balance")
	// Победитель уже определен; для вызывающего это no-op, а не сбой
	ErrWinnerAlreadyDetermined = errors.New("winner already determined")
)
