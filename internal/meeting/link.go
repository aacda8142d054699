package meeting

import (
	"fmt"

	"github.com/google/uuid"
)

// Fixed namespace so room names are stable across processes.
var roomNamespace = uuid.MustParse("8f7c2d1e-4b26-4df0-9a3c-5e1f6b2a9c44")

const baseURL = "https://meet.jit.si/"

// RoomName derives a stable, collision-free room identifier from the
// appointment and professional ids. The same pair always yields the
// same room.
func RoomName(appointmentID, professionalID uint) string {
	seed := fmt.Sprintf("appointment:%d:professional:%d", appointmentID, professionalID)
	return "miamente-" + uuid.NewSHA1(roomNamespace, []byte(seed)).String()
}

func RoomLink(appointmentID, professionalID uint) string {
	return baseURL + RoomName(appointmentID, professionalID)
}
