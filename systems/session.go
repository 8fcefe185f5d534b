package systems

import (
	"log"
	"time"

	"github.com/automoto/slime-soccer/components"
	cfg "github.com/automoto/slime-soccer/config"
	"github.com/automoto/slime-soccer/shared/match"
	"github.com/yohamta/donburi/ecs"
)

// now is swapped in tests.
var now = time.Now

// UpdateSession drives the match: the kickoff screen while idle, real-time
// frames while running, the results screen once the whistle has blown.
func UpdateSession(e *ecs.ECS) {
	session := GetSession(e)
	if session == nil {
		return
	}
	input := getOrCreateInput(e)
	settings := GetOrCreateSettings(e)

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.ShowDebug = !settings.ShowDebug
		SaveCurrentSettings(settings)
	}

	switch session.Phase() {
	case match.PhaseIdle:
		updateKickoff(e, session, input, settings)

	case match.PhaseRunning:
		if GetAction(input, cfg.ActionBack).JustPressed {
			log.Println("[match] abandoned")
			session.ResetMatch()
			return
		}
		session.Frame(now(), SlimeControls(e))

	case match.PhaseEnded:
		switch {
		case GetAction(input, cfg.ActionStart).JustPressed:
			startMatch(e, session, settings)
		case GetAction(input, cfg.ActionBack).JustPressed:
			session.ResetMatch()
		}
	}
}

func updateKickoff(e *ecs.ECS, session *match.Session, input *components.InputData, settings *components.SettingsData) {
	changed := false
	if GetAction(input, cfg.ActionCycleMode).JustPressed {
		settings.ModeIndex = cycle(settings.ModeIndex, len(cfg.Settings.Modes))
		changed = true
	}
	if GetAction(input, cfg.ActionCycleDuration).JustPressed {
		settings.DurationIndex = cycle(settings.DurationIndex, len(cfg.Settings.Durations))
		changed = true
	}
	if GetAction(input, cfg.ActionCycleDifficulty).JustPressed {
		settings.DifficultyIndex = cycle(settings.DifficultyIndex, len(cfg.Settings.Difficulties))
		changed = true
	}
	if changed {
		applySettings(session, settings)
		QueueSFX(e, cfg.SoundMenuSelect)
		SaveCurrentSettings(settings)
	}

	if GetAction(input, cfg.ActionStart).JustPressed {
		startMatch(e, session, settings)
	}
}

func startMatch(e *ecs.ECS, session *match.Session, settings *components.SettingsData) {
	applySettings(session, settings)
	if err := session.StartPreset(ChosenDuration(settings)); err != nil {
		log.Printf("[match] could not start: %v", err)
		return
	}
	QueueSFX(e, cfg.SoundWhistle)
}

// GetSession returns the running session, or nil before the scene is built.
func GetSession(e *ecs.ECS) *match.Session {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return nil
	}
	return components.Session.Get(entry).Session
}
