package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"sort"
	"strconv"
)

// ComputeContextHash fingerprints one decision's inputs for audit and replay
// detection. Inventory names are sorted before hashing so observation order
// never changes the digest, and every component is length-prefixed so names
// containing delimiter characters cannot collide with adjacent components.
// Not a security boundary.
func ComputeContextHash(nowISO string, signal SignalContext, inventoryNames []string, selected MealKey) string {
	names := make([]string, len(inventoryNames))
	copy(names, inventoryNames)
	sort.Strings(names)

	h := sha256.New()
	write := func(s string) {
		io.WriteString(h, strconv.Itoa(len(s)))
		io.WriteString(h, ":")
		io.WriteString(h, s)
	}

	write(nowISO)
	write(string(signal.Window))
	write(string(signal.Energy))
	write(strconv.FormatBool(signal.CalendarConflict))
	write(strconv.Itoa(len(names)))
	for _, name := range names {
		write(name)
	}
	write(string(selected))

	return hex.EncodeToString(h.Sum(nil))
}
