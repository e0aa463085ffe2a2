package container

import "github.com/sghaida/codi/di"

var (
	_ di.SlotBinder    = (*Container)(nil)
	_ di.SlotBinder    = (*PrivateContainer)(nil)
	_ di.PrivateBinder = (*PrivateContainer)(nil)
	_ SlotSource       = (*Container)(nil)
	_ SlotSource       = (*PrivateContainer)(nil)
)
