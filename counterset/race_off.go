//go:build !race

package counterset

const raceEnabled = false
