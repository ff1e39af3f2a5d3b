package skills

// SkillMap maps skill type id to trained level (0-5). Absent means
// untrained.
type SkillMap map[int]int

// Level returns the trained level for a skill id, clamped to 0-5.
func (m SkillMap) Level(skillTypeID int) int {
	lvl := m[skillTypeID]
	if lvl < 0 {
		return 0
	}
	if lvl > 5 {
		return 5
	}
	return lvl
}

// Support skill type ids. These twelve skills apply passive bonuses to the
// stats snapshot; everything else in the skill catalog only matters for
// prerequisite planning.
const (
	SkillCPUManagement            = 3426
	SkillPowerGridManagement      = 3413
	SkillCapacitorManagement      = 3418
	SkillCapacitorSystemsOperation = 3417
	SkillShieldManagement         = 3419
	SkillHullUpgrades             = 3394
	SkillMechanics                = 3392
	SkillNavigation               = 3449
	SkillEvasiveManeuvering       = 3453
	SkillTargetManagement         = 3429
	SkillLongRangeTargeting       = 3428
	SkillSignatureAnalysis        = 3431
)

// SupportSkill pairs a support skill's type id with its display name.
type SupportSkill struct {
	TypeID int
	Name   string
}

// SupportSkills lists the twelve modeled support skills in application
// order.
var SupportSkills = []SupportSkill{
	{SkillCPUManagement, "CPU Management"},
	{SkillPowerGridManagement, "Power Grid Management"},
	{SkillCapacitorManagement, "Capacitor Management"},
	{SkillCapacitorSystemsOperation, "Capacitor Systems Operation"},
	{SkillShieldManagement, "Shield Management"},
	{SkillHullUpgrades, "Hull Upgrades"},
	{SkillMechanics, "Mechanics"},
	{SkillNavigation, "Navigation"},
	{SkillEvasiveManeuvering, "Evasive Maneuvering"},
	{SkillTargetManagement, "Target Management"},
	{SkillLongRangeTargeting, "Long Range Targeting"},
	{SkillSignatureAnalysis, "Signature Analysis"},
}

// AllLevelV returns a SkillMap with every support skill trained to V.
func AllLevelV() SkillMap {
	m := make(SkillMap, len(SupportSkills))
	for _, s := range SupportSkills {
		m[s.TypeID] = 5
	}
	return m
}
