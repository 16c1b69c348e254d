package protocol

// Checksum computes the 16-bit wrap-around sum PMS frames carry in both
// directions: every preceding frame byte added into a uint16.
func Checksum(data []byte) uint16 {
	var sum uint16
	for _, b := range data {
		sum += uint16(b)
	}
	return sum
}
