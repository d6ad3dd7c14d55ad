// Package versioning drives dvc and git to initialize data versioning and to
// publish tagged data snapshots.
//
// The Orchestrator never touches the filesystem or spawns processes itself;
// all repository access goes through a RepositoryState so the command
// sequences can be exercised against a scripted fake.
//
// Publishing follows a small state machine:
//
//	CHECKING -> UP_TO_DATE   status output equals the dvc sentinel
//	CHECKING -> PUBLISHING   status differs or the status query failed
//	PUBLISHING -> DONE       every publish command exited zero
//
// A failure while PUBLISHING stops the sequence. Commits and tags created
// before the failing command are left in place.
//
// Two runs against the same working tree at once are not guarded against and
// can leave git and dvc metadata inconsistent.
package versioning
