package speech

import "time"

const maxWaitSeconds = 1800

//OneMinuteSize returns the byte size of one minute of LINEAR16 mono audio
func OneMinuteSize(sampleRate int) int64 {
	return int64(sampleRate) * 2 * 60
}

//AdaptiveTimeout returns the wait limit for a remote recognition operation.
//Twice the audio duration plus a minute, capped at 30 minutes.
func AdaptiveTimeout(size int64, sampleRate int) time.Duration {
	duration := size / (int64(sampleRate) * 2)
	seconds := 2*duration + 60
	if seconds > maxWaitSeconds {
		seconds = maxWaitSeconds
	}
	return time.Duration(seconds) * time.Second
}
