package model

// RoomInfo describes a bookable room. Available is an administrative
// flag (room open for use at all), not a statement about any particular
// time slot.
type RoomInfo struct {
	ID        string `json:"id" bson:"_id"`
	Name      string `json:"name" bson:"name"`
	Location  string `json:"location" bson:"location"`
	Capacity  int    `json:"capacity" bson:"capacity"`
	Available bool   `json:"available" bson:"available"`
}
