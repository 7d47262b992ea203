package attendance_test

import (
	"testing"
	"time"

	"github.com/okian/lineout/internal/domain/attendance"
	"github.com/okian/lineout/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestUnify(t *testing.T) {
	Convey("Given a manual log and a form log with different headers", t, func() {
		manual := model.Table{
			Header: []string{"Fecha", "Jugador", "Origen"},
			Rows: [][]string{
				{"01/03/2026", "Juan Perez", "Manual"},
				{"02/03/2026", "", "Manual"},
			},
		}
		form := model.Table{
			Header: []string{"Marca temporal", "Nombre y apellido"},
			Rows: [][]string{
				{"2026-03-08 10:00", "Juan Perez, Ana Diaz"},
				{"garbage"},
			},
		}

		Convey("When unified", func() {
			rows := attendance.Unify(manual, form)

			Convey("Then columns are taken by position and sources concatenated in order", func() {
				So(rows, ShouldResemble, []model.RawAttendance{
					{Date: "01/03/2026", Name: "Juan Perez"},
					{Date: "02/03/2026", Name: ""},
					{Date: "2026-03-08 10:00", Name: "Juan Perez, Ana Diaz"},
					{Date: "garbage", Name: ""},
				})
			})
		})

		Convey("When one source is empty", func() {
			rows := attendance.Unify(model.Table{}, form)
			So(len(rows), ShouldEqual, 2)
			So(rows[0].Date, ShouldEqual, "2026-03-08 10:00")
		})

		Convey("When both sources are empty", func() {
			rows := attendance.Unify(model.Table{}, model.Table{Header: []string{"a", "b"}})

			Convey("Then the relation is empty but usable", func() {
				So(rows, ShouldNotBeNil)
				So(rows, ShouldBeEmpty)
			})
		})
	})
}

func TestClean(t *testing.T) {
	Convey("Given unified rows with multi-name cells and bad dates", t, func() {
		rows := []model.RawAttendance{
			{Date: "01/03/2026", Name: "Juan Perez"},
			{Date: "2026-03-08 10:00", Name: "Juan Perez, Ana Diaz"},
			{Date: "not a date", Name: "Tom Hill, Diego"},
			{Date: "08/03/2026", Name: "nan"},
			{Date: "08/03/2026", Name: " , "},
		}

		Convey("When cleaned", func() {
			events, rep := attendance.CleanWithReport(rows)

			Convey("Then each row is exploded into one event per name", func() {
				So(events, ShouldResemble, []model.Event{
					{Date: day(2026, time.March, 1), Name: "Juan Perez"},
					{Date: day(2026, time.March, 8), Name: "Juan Perez"},
					{Date: day(2026, time.March, 8), Name: "Ana Diaz"},
				})
			})

			Convey("Then the report accounts for every dropped candidate", func() {
				So(rep.Rows, ShouldEqual, 5)
				So(rep.Events, ShouldEqual, 3)
				So(rep.Exploded, ShouldEqual, 2)
				So(rep.InvalidDate, ShouldEqual, 2)
				So(rep.NoName, ShouldEqual, 2)
			})
		})

		Convey("When cleaned twice", func() {
			once := attendance.Clean(rows)
			twice := attendance.Clean(attendance.Raw(once))

			Convey("Then the second pass changes nothing", func() {
				So(twice, ShouldResemble, once)
			})
		})

		Convey("When nothing is given", func() {
			So(attendance.Clean(nil), ShouldBeEmpty)
		})
	})
}

func TestSessionDates(t *testing.T) {
	Convey("Given events over three days with duplicates", t, func() {
		events := []model.Event{
			{Date: day(2026, time.March, 1), Name: "Juan"},
			{Date: day(2026, time.March, 8), Name: "Juan"},
			{Date: day(2026, time.March, 8), Name: "Ana"},
			{Date: day(2026, time.March, 4), Name: "Ana"},
			{Date: day(2026, time.March, 1), Name: "Juan"},
		}

		Convey("Then distinct days come newest first", func() {
			So(attendance.SessionDates(events), ShouldResemble, []time.Time{
				day(2026, time.March, 8),
				day(2026, time.March, 4),
				day(2026, time.March, 1),
			})
		})

		Convey("Then a day filter keeps only that day", func() {
			got := attendance.OnDay(events, day(2026, time.March, 8))
			So(len(got), ShouldEqual, 2)
		})

		Convey("Then no events means no sessions", func() {
			So(attendance.SessionDates(nil), ShouldBeEmpty)
		})
	})
}
