// Package audio synthesises and plays the session's sound cues.
package audio

// Sound names one cue in the bank. The set is closed, so an unknown sound
// cannot be requested.
type Sound uint8

const (
	SoundAmbience  Sound = iota // indoor background loop
	SoundGunshot                // weapon fired
	SoundEquip                  // weapon drawn at session start
	SoundDoor                   // door traversal begins
	SoundFlesh                  // shot connected with a child
	SoundLock                   // locked door shot open
	SoundReload                 // reload started
	SoundEmptyShot              // trigger pulled on an empty clip
	SoundTrash                  // weapon thrown away
	SoundSiren                  // police siren loop outside
	soundCount                  // sentinel
)

var soundNames = [soundCount]string{
	SoundAmbience:  "ambience",
	SoundGunshot:   "gunshot",
	SoundEquip:     "equip",
	SoundDoor:      "door",
	SoundFlesh:     "flesh",
	SoundLock:      "lock",
	SoundReload:    "reload",
	SoundEmptyShot: "empty shot",
	SoundTrash:     "trash",
	SoundSiren:     "siren",
}

func (s Sound) String() string {
	if s >= soundCount {
		return "unknown"
	}
	return soundNames[s]
}

// Sounds lists every cue in declaration order.
func Sounds() []Sound {
	out := make([]Sound, soundCount)
	for i := range out {
		out[i] = Sound(i)
	}
	return out
}
