package sim

import "testing"

func TestAchievementsUnlockOnce(t *testing.T) {
	a := NewAchievements()
	got := a.Check(Stats{CreaturesEaten: 1}, 1, 10)
	if len(got) != 1 || got[0].ID != AchFirstCatch {
		t.Fatalf("first check: %+v", got)
	}
	if again := a.Check(Stats{CreaturesEaten: 2}, 1, 20); len(again) != 0 {
		t.Fatalf("re-unlocked: %+v", again)
	}
	if _, ok := a.Unlock(AchFirstCatch); ok {
		t.Fatalf("Unlock reported a second first time")
	}
	if _, ok := a.Unlock("nope"); ok {
		t.Fatalf("unknown id unlocked")
	}
}

func TestAchievementThresholds(t *testing.T) {
	a := NewAchievements()
	got := a.Check(Stats{CreaturesEaten: 10, Distance: 1000}, 3, 1000)
	want := map[AchievementID]bool{
		AchFirstCatch: true, AchBigEater: true, AchSpeedster: true,
		AchSurvivor: true, AchMasterHunter: true,
	}
	if len(got) != len(want) {
		t.Fatalf("got %d achievements, want %d", len(got), len(want))
	}
	for _, g := range got {
		if !want[g.ID] {
			t.Fatalf("unexpected %s", g.ID)
		}
	}

	b := NewAchievements()
	if got := b.Check(Stats{CreaturesEaten: 9, Distance: 999.9}, 2, 999); len(got) != 1 {
		t.Fatalf("only first catch should be earned below thresholds: %+v", got)
	}
}

func TestAchievementsResetAndCopy(t *testing.T) {
	a := NewAchievements()
	a.Unlock(AchSurvivor)
	l := a.List()
	l[0].Earned = true
	if a.List()[0].Earned {
		t.Fatalf("List exposes internal state")
	}
	a.Reset()
	for _, x := range a.List() {
		if x.Earned {
			t.Fatalf("%s still earned after reset", x.ID)
		}
	}
}

func TestEventBusDispatch(t *testing.T) {
	eb := NewEventBus()
	var scores, all int
	eb.Subscribe(EventScoreChanged, func(Event) { scores++ })
	eb.SubscribeAll(func(Event) { all++ })

	eb.Emit(Event{Type: EventScoreChanged})
	eb.Emit(Event{Type: EventGameOver})
	eb.Emit(Event{Type: EventAchievementUnlocked})

	if scores != 1 || all != 3 {
		t.Fatalf("scores=%d all=%d", scores, all)
	}
}
