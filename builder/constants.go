package builder

// Method name constants, used only to prefix wrapped errors with the
// constructor that produced them.
const (
	methodPath           = "Path"
	methodCycle          = "Cycle"
	methodStar           = "Star"
	methodWheel          = "Wheel"
	methodComplete       = "Complete"
	methodPlatonicSolid  = "PlatonicSolid"
	methodRandomRegular  = "RandomRegular"
	methodRandomSparse   = "RandomSparse"
)

// centerVertexID is the fixed hub ID used by Star, Wheel, and
// PlatonicSolid(..., withCenter=true).
const centerVertexID = "Center"

// Minimum node counts per topology. A wheel's outer ring must itself be a
// valid cycle (minWheelNodes-1 >= minCycleNodes), and Star/Wheel/Complete
// additionally respect core.MaxDegree via maxHubDegree below.
const (
	minPathNodes    = 2
	minCycleNodes   = 3
	minStarNodes    = 2
	minWheelNodes   = 4
	minCompleteNodes = 1
)

// maxHubDegree bounds the size of any topology whose construction puts all
// n-1 remaining vertices on one hub (Star, Wheel's center, Complete's every
// vertex): n-1 must not exceed core.MaxDegree.
const maxHubDegree = 6

// maxStubMatchingAttempts bounds RandomRegular's retries before giving up.
const maxStubMatchingAttempts = 8

const (
	probMin = 0.0
	probMax = 1.0
)
