package fixedwidth

// LineLength is the exact size of every encoded line regardless of content.
const LineLength = 1440

// Section offsets and widths, cumulative and zero-based. The mailing block
// mirrors the principal block; the two gaps are reserved by the downstream
// layout and stay space-filled.
const (
	docNumberOffset = 0
	docNumberWidth  = 12

	entityNameOffset = 12
	entityNameWidth  = 192

	statusOffset = 204
	statusWidth  = 1

	entityTypeOffset = 205
	entityTypeWidth  = 15

	principalAddr1Offset = 220
	principalAddr2Offset = 262
	principalCityOffset  = 304
	principalStateOffset = 332
	principalZipOffset   = 334
	principalCtryOffset  = 344

	mailingAddr1Offset = 346
	mailingAddr2Offset = 388
	mailingCityOffset  = 430
	mailingStateOffset = 458
	mailingZipOffset   = 460
	mailingCtryOffset  = 470

	addressWidth = 42
	cityWidth    = 28
	stateWidth   = 2
	zipWidth     = 10
	countryWidth = 2

	fileDateOffset = 472
	fileDateWidth  = 8

	agentNameOffset  = 544
	agentNameWidth   = 42
	agentTypeOffset  = 586
	agentTypeWidth   = 1
	agentAddrOffset  = 587
	agentCityOffset  = 629
	agentStateOffset = 657
	agentZipOffset   = 659
	agentZipWidth    = 9

	officerBlockOffset = 668
	officerBlockWidth  = 128
	officerTitleWidth  = 4
	officerFlagWidth   = 1
	officerNameWidth   = 42
	officerZipWidth    = 9

	// MaxOfficers caps how many officer blocks fit before the final pad.
	MaxOfficers = 6
)

// Section defaults.
const (
	defaultEntityName = "UNKNOWN ASSOCIATION"
	defaultStatus     = "A"
	defaultEntityType = "CONDO"
	defaultFileDate   = "20200101"

	agentType  = "C"
	agentState = "FL"

	officerPersonFlag = "P"
)
