package tycoon

import "errors"

var (
	ErrInsufficientGold     = errors.New("insufficient gold")
	ErrInsufficientCrystals = errors.New("insufficient crystals")
	ErrUnknownWorker        = errors.New("unknown worker")
	ErrUnknownWorkshop      = errors.New("unknown workshop")
	ErrUnknownResearch      = errors.New("unknown research node")
	ErrUnknownShopItem      = errors.New("unknown shop item")
	ErrUnknownStructure     = errors.New("unknown structure")
	ErrRosterFull           = errors.New("workshop roster is full")
	ErrInvalidTransition    = errors.New("invalid worker state transition")
	ErrMaxLevel             = errors.New("already at max level")
	ErrMaxTier              = errors.New("already at max tier")
	ErrResearchBusy         = errors.New("research already in progress")
	ErrResearchDone         = errors.New("research already completed")
	ErrAlreadyOwned         = errors.New("shop item already owned")
	ErrUnknownOrder         = errors.New("unknown order")
	ErrNotEligible          = errors.New("prestige requirements not met")
)
