package stats_test

import (
	"testing"
	"time"

	"github.com/okian/lineout/internal/domain/attendance"
	"github.com/okian/lineout/internal/domain/model"
	"github.com/okian/lineout/internal/domain/roles"
	"github.com/okian/lineout/internal/domain/stats"
	. "github.com/smartystreets/goconvey/convey"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var (
	juan = model.Player{FirstName: "Juan", LastName: "Perez", Role: "Pilar"}
	ana  = model.Player{FirstName: "Ana", LastName: "Diaz", Role: "Wing"}
)

// scenario is the two-session squad used across tests: Juan is marked by the
// coach on 1 March and both players submit the form together on 8 March.
func scenario() []model.Event {
	manual := model.Table{
		Header: []string{"Fecha", "Jugador", "Origen"},
		Rows:   [][]string{{"01/03/2026", "Juan Perez", "Manual"}},
	}
	form := model.Table{
		Header: []string{"Marca temporal", "Nombre"},
		Rows:   [][]string{{"2026-03-08 10:00", "Juan Perez, Ana Diaz"}},
	}
	return attendance.Clean(attendance.Unify(manual, form))
}

func TestStatusOf(t *testing.T) {
	Convey("Given percentages around the thresholds", t, func() {
		So(stats.StatusOf(100), ShouldEqual, stats.Excellent)
		So(stats.StatusOf(85.01), ShouldEqual, stats.Excellent)
		So(stats.StatusOf(85.0), ShouldEqual, stats.Regular)
		So(stats.StatusOf(65.0), ShouldEqual, stats.Regular)
		So(stats.StatusOf(64.99), ShouldEqual, stats.Low)
		So(stats.StatusOf(0), ShouldEqual, stats.Low)

		Convey("Then each status has a marker", func() {
			So(stats.Excellent.Emoji(), ShouldEqual, "🟢")
			So(stats.Regular.Emoji(), ShouldEqual, "🟡")
			So(stats.Low.Emoji(), ShouldEqual, "🔴")
		})
	})
}

func TestPeriodPercentages(t *testing.T) {
	Convey("Given the two-session scenario", t, func() {
		events := scenario()
		// Tuesday 10 March: the month holds both sessions, the week none.
		now := time.Date(2026, time.March, 10, 18, 0, 0, 0, time.UTC)

		Convey("Then there are two sessions", func() {
			So(stats.SessionCount(events), ShouldEqual, 2)
			So(attendance.SessionDates(events), ShouldResemble, []time.Time{day(2026, time.March, 8), day(2026, time.March, 1)})
		})

		Convey("Then Juan attended every session", func() {
			p := stats.PeriodPercentages(events, "Juan Perez", now)
			So(p.Year, ShouldEqual, 100.0)
			So(p.Month, ShouldEqual, 100.0)
			So(p.Week, ShouldEqual, 0.0)
		})

		Convey("Then Ana attended half", func() {
			p := stats.PeriodPercentages(events, " Ana Diaz ", now)
			So(p.Year, ShouldEqual, 50.0)
			So(p.Month, ShouldEqual, 50.0)
		})

		Convey("Then a player who never attended scores zero everywhere", func() {
			So(stats.PeriodPercentages(events, "Tom Hill", now), ShouldResemble, stats.Periods{})
			So(stats.PeriodPercentages(events, "", now), ShouldResemble, stats.Periods{})
		})

		Convey("When now falls in the week of the second session", func() {
			sunday := time.Date(2026, time.March, 8, 20, 0, 0, 0, time.UTC)
			p := stats.PeriodPercentages(events, "Ana Diaz", sunday)

			Convey("Then the week only counts days since Monday", func() {
				So(p.Week, ShouldEqual, 100.0)
				So(p.Year, ShouldEqual, 50.0)
			})
		})

		Convey("When now is in a later month", func() {
			p := stats.PeriodPercentages(events, "Juan Perez", time.Date(2026, time.April, 2, 0, 0, 0, 0, time.UTC))
			So(p.Year, ShouldEqual, 100.0)
			So(p.Month, ShouldEqual, 0.0)
			So(p.Week, ShouldEqual, 0.0)
		})
	})

	Convey("Given duplicate events for the same player and day", t, func() {
		events := []model.Event{
			{Date: day(2026, time.March, 1), Name: "Juan"},
			{Date: day(2026, time.March, 1), Name: "Juan"},
			{Date: day(2026, time.March, 2), Name: "Ana"},
		}

		Convey("Then the day counts once", func() {
			p := stats.PeriodPercentages(events, "Juan", day(2026, time.March, 2))
			So(p.Year, ShouldEqual, 50.0)
		})
	})

	Convey("Given no events", t, func() {
		So(stats.PeriodPercentages(nil, "Juan", time.Now()), ShouldResemble, stats.Periods{})
	})
}

func TestDailyBreakdown(t *testing.T) {
	Convey("Given the two-session scenario and its roster", t, func() {
		events := scenario()
		idx := roles.BuildIndex([]model.Player{juan, ana})

		Convey("When breaking down 8 March", func() {
			b := stats.DailyBreakdown(events, idx, day(2026, time.March, 8))

			Convey("Then one forward and one back are present", func() {
				So(b.Total, ShouldEqual, 2)
				So(b.Forwards, ShouldEqual, 1)
				So(b.Backs, ShouldEqual, 1)
				So(b.Unidentified, ShouldEqual, 0)
				So(b.Identified(), ShouldBeTrue)
				So(b.Present, ShouldResemble, []string{"Ana Diaz", "Juan Perez"})
			})
		})

		Convey("When a present name is not on the roster", func() {
			extra := append(events, model.Event{Date: day(2026, time.March, 8), Name: "Diego"})
			b := stats.DailyBreakdown(extra, idx, time.Date(2026, time.March, 8, 21, 0, 0, 0, time.UTC))

			Convey("Then it is unidentified but still present", func() {
				So(b.Total, ShouldEqual, 3)
				So(b.Unidentified, ShouldEqual, 1)
				So(b.Identified(), ShouldBeFalse)
			})

			Convey("Then it never gets a percentage of its own", func() {
				So(stats.PlayerPeriods(extra, idx, "Diego", day(2026, time.March, 9)), ShouldResemble, stats.Periods{})
				So(stats.Unidentified([]model.Player{juan, ana}, extra), ShouldResemble, []string{"Diego"})
			})

			Convey("Then roster players keep their percentages", func() {
				p := stats.PlayerPeriods(extra, idx, "Juan Perez", day(2026, time.March, 9))
				So(p.Year, ShouldEqual, 100.0)
				So(p.Month, ShouldEqual, 100.0)
			})
		})

		Convey("When the day has no sessions", func() {
			b := stats.DailyBreakdown(events, idx, day(2026, time.March, 2))
			So(b.Total, ShouldEqual, 0)
			So(b.Present, ShouldBeEmpty)
		})
	})
}

func TestSquadAndRoster(t *testing.T) {
	Convey("Given a roster with one active injury", t, func() {
		tom := model.Player{FirstName: "Tom", LastName: "Hill", Role: "Hooker"}
		players := []model.Player{juan, ana, tom}
		injuries := []model.Injury{
			{Player: "Tom Hill", Severity: "Rojo"},
			{Player: "Ana Diaz", Severity: "Verde"},
		}

		Convey("Then availability excludes the injured", func() {
			s := stats.SquadSummary(players, injuries)
			So(s.Roster, ShouldEqual, 3)
			So(s.Injured, ShouldEqual, 1)
			So(s.Available, ShouldEqual, 2)
			So(s.AvailablePct, ShouldAlmostEqual, 66.6666, 0.001)
		})

		Convey("Then an empty roster is never divided by", func() {
			s := stats.SquadSummary(nil, injuries)
			So(s.Available, ShouldEqual, 0)
			So(s.AvailablePct, ShouldEqual, 0.0)
		})

		Convey("When building the roster attendance view", func() {
			rows := stats.RosterAttendance(players, scenario(), injuries)

			Convey("Then rows are sorted by name with overall percentages", func() {
				So(len(rows), ShouldEqual, 3)
				So(rows[0].Player.FullName(), ShouldEqual, "Ana Diaz")
				So(rows[0].Percentage, ShouldEqual, 50.0)
				So(rows[0].Status, ShouldEqual, stats.Low)
				So(rows[1].Player.FullName(), ShouldEqual, "Juan Perez")
				So(rows[1].Percentage, ShouldEqual, 100.0)
				So(rows[1].Status, ShouldEqual, stats.Excellent)
				So(rows[1].Attended, ShouldEqual, 2)
				So(rows[1].Sessions, ShouldEqual, 2)
			})

			Convey("Then players who never attended score zero", func() {
				So(rows[2].Player.FullName(), ShouldEqual, "Tom Hill")
				So(rows[2].Percentage, ShouldEqual, 0.0)
				So(rows[2].Sidelined, ShouldBeTrue)
			})
		})
	})
}

func TestDailySeries(t *testing.T) {
	Convey("Given the two-session scenario", t, func() {
		series := stats.DailySeries(scenario())

		Convey("Then each session has its distinct head count, oldest first", func() {
			So(series, ShouldResemble, []stats.DayCount{
				{Date: day(2026, time.March, 1), Players: 1},
				{Date: day(2026, time.March, 8), Players: 2},
			})
		})
	})
}

func TestBuildAttendanceIndex(t *testing.T) {
	Convey("Given events with mixed-case names", t, func() {
		idx := stats.BuildAttendanceIndex([]model.Event{
			{Date: day(2026, time.March, 1), Name: "Juan Perez"},
			{Date: day(2026, time.March, 8), Name: " Juan Perez "},
			{Date: day(2026, time.March, 8), Name: "juan perez"},
		})

		Convey("Then names are keyed as written after trimming", func() {
			So(len(idx), ShouldEqual, 2)
			So(idx["Juan Perez"].Cardinality(), ShouldEqual, 2)
			So(idx["juan perez"].Cardinality(), ShouldEqual, 1)
		})
	})

	Convey("Given a player whose form entry is lower-cased", t, func() {
		events := []model.Event{
			{Date: day(2026, time.March, 1), Name: "Juan Perez"},
			{Date: day(2026, time.March, 8), Name: "juan perez"},
		}
		now := day(2026, time.March, 9)

		Convey("Then the roster view and the period view agree", func() {
			rows := stats.RosterAttendance([]model.Player{juan}, events, nil)
			p := stats.PeriodPercentages(events, juan.FullName(), now)
			So(rows[0].Percentage, ShouldEqual, 50.0)
			So(p.Year, ShouldEqual, rows[0].Percentage)
		})
	})
}
