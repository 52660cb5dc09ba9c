package core

// tickMsg advances the animation frame
type tickMsg struct{}

// rouletteMsg asks for the next random note to be emphasized
type rouletteMsg struct{}
