package sim

// Stats accumulate over one run and reset with the game. HighScore is the
// exception: it survives resets and is persisted through the ScalarStore.
type Stats struct {
	CreaturesEaten  int
	Distance        float64 // units travelled by the player
	TimePlayed      float64 // seconds of unpaused play
	HighScore       int
	PlacementMisses int // spawns that fell back to a best-effort position
}

type AchievementID string

const (
	AchFirstCatch   AchievementID = "firstCatch"
	AchSpeedster    AchievementID = "speedster"
	AchBigEater     AchievementID = "bigEater"
	AchSurvivor     AchievementID = "survivor"
	AchMasterHunter AchievementID = "masterHunter"
)

const (
	speedsterDistance = 1000.0
	bigEaterCount     = 10
	survivorLevel     = 3
	masterHunterScore = 1000
)

type Achievement struct {
	ID          AchievementID
	Title       string
	Description string
	Earned      bool
}

// Achievements tracks which milestones were reached in the current run.
type Achievements struct {
	list []Achievement
}

func NewAchievements() *Achievements {
	return &Achievements{list: []Achievement{
		{ID: AchFirstCatch, Title: "First Catch!", Description: "Catch your first prey"},
		{ID: AchSpeedster, Title: "Speedster", Description: "Travel 1000 units in a single game"},
		{ID: AchBigEater, Title: "Big Eater", Description: "Eat 10 creatures in a single game"},
		{ID: AchSurvivor, Title: "Survivor", Description: "Reach level 3"},
		{ID: AchMasterHunter, Title: "Master Hunter", Description: "Score 1000 points"},
	}}
}

// Unlock marks id earned. It returns the achievement and true only the
// first time.
func (a *Achievements) Unlock(id AchievementID) (Achievement, bool) {
	for i := range a.list {
		if a.list[i].ID != id {
			continue
		}
		if a.list[i].Earned {
			return a.list[i], false
		}
		a.list[i].Earned = true
		return a.list[i], true
	}
	return Achievement{}, false
}

// Check unlocks every milestone the current numbers satisfy and returns
// the newly earned ones.
func (a *Achievements) Check(st Stats, level, score int) []Achievement {
	var got []Achievement
	try := func(id AchievementID, cond bool) {
		if !cond {
			return
		}
		if ach, ok := a.Unlock(id); ok {
			got = append(got, ach)
		}
	}
	try(AchFirstCatch, st.CreaturesEaten >= 1)
	try(AchBigEater, st.CreaturesEaten >= bigEaterCount)
	try(AchSpeedster, st.Distance >= speedsterDistance)
	try(AchSurvivor, level >= survivorLevel)
	try(AchMasterHunter, score >= masterHunterScore)
	return got
}

func (a *Achievements) Reset() {
	for i := range a.list {
		a.list[i].Earned = false
	}
}

// List returns a copy in display order.
func (a *Achievements) List() []Achievement {
	out := make([]Achievement, len(a.list))
	copy(out, a.list)
	return out
}
