package arena_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ballpit/internal/arena"
)

const frame = 1.0 / 60

func advance(a *arena.Arena, seconds float64) {
	steps := int(seconds/frame + 0.5)
	for i := 0; i < steps; i++ {
		a.Tick(frame)
	}
}

var _ = Describe("Events", func() {
	var a *arena.Arena

	BeforeEach(func() {
		a = arena.New(arena.Bounds{Width: 800, Height: 600, Floor: 90}, rand.New(rand.NewSource(3)))
	})

	Describe("forcing an event", func() {
		It("sets the speed scale by kind", func() {
			Expect(a.ForceEvent(arena.EventSpeed)).To(Succeed())
			Expect(a.SpeedScale()).To(Equal(4.0))

			Expect(a.ForceEvent(arena.EventSlowed)).To(Succeed())
			Expect(a.SpeedScale()).To(Equal(0.35))

			Expect(a.ForceEvent(arena.EventGiant)).To(Succeed())
			Expect(a.SpeedScale()).To(Equal(1.0))
		})

		It("labels the event by its enum", func() {
			Expect(a.ForceEvent(arena.EventMini)).To(Succeed())
			Expect(a.ActiveEvent()).To(Equal(arena.EventMini))
			Expect(a.ActiveEvent().Label()).To(Equal("Event: MINI"))
			Expect(a.Stats().EventRemaining).To(Equal(arena.EventDuration))
			Expect(a.Stats().TotalEvents).To(Equal(1))
		})

		It("rejects the empty event", func() {
			Expect(a.ForceEvent(arena.EventNone)).To(MatchError(arena.ErrUnknownEvent))
		})

		It("resizes existing balls around their centers", func() {
			b := a.CreateBallAt(400, 300)
			before := viewOf(a, b.ID())

			Expect(a.ForceEvent(arena.EventGiant)).To(Succeed())
			giant := viewOf(a, b.ID())
			Expect(giant.Scale).To(Equal(arena.GiantScale))
			Expect(giant.CenterX()).To(BeNumerically("~", before.CenterX(), 1e-9))
			Expect(giant.CenterY()).To(BeNumerically("~", before.CenterY(), 1e-9))

			Expect(a.ForceEvent(arena.EventMini)).To(Succeed())
			Expect(viewOf(a, b.ID()).Scale).To(BeNumerically("~", arena.MiniScale, 1e-12))

			Expect(a.ForceEvent(arena.EventSpeed)).To(Succeed())
			Expect(viewOf(a, b.ID()).Scale).To(Equal(arena.NormalScale))
		})

		It("turns existing balls rainbow", func() {
			for i := 0; i < 20; i++ {
				a.CreateBallAt(100+float64(i*30), 300)
			}
			Expect(a.ForceEvent(arena.EventRainbow)).To(Succeed())
			for _, v := range a.Balls() {
				Expect(v.Rainbow).To(BeTrue())
			}
		})

		It("leaves balls created later to the creation policy", func() {
			Expect(a.ForceEvent(arena.EventGiant)).To(Succeed())
			for i := 0; i < 40; i++ {
				b := a.CreateBallAt(100+float64(i*15), 300)
				v := viewOf(a, b.ID())
				if v.Kind == arena.KindPlain {
					Expect(v.Scale).To(Equal(arena.GiantScale))
				} else {
					Expect(v.Scale).To(Equal(arena.NormalScale))
				}
			}
		})
	})

	Describe("event expiry", func() {
		It("does not expire before the duration", func() {
			Expect(a.ForceEvent(arena.EventSpeed)).To(Succeed())
			for i := 0; i < 19999; i++ {
				a.Tick(0.001)
			}
			Expect(a.SpeedScale()).To(Equal(4.0))
			Expect(a.ActiveEvent()).To(Equal(arena.EventSpeed))
		})

		It("expires after exactly the duration", func() {
			Expect(a.ForceEvent(arena.EventSpeed)).To(Succeed())
			advance(a, arena.EventDuration)
			Expect(a.SpeedScale()).To(Equal(1.0))
			Expect(a.ActiveEvent()).To(Equal(arena.EventNone))
			Expect(a.ActiveEvent().Label()).To(BeEmpty())
		})

		It("restores scale and plain colors on expiry", func() {
			Expect(a.ForceEvent(arena.EventRainbow)).To(Succeed())
			for i := 0; i < 10; i++ {
				a.CreateBallAt(100+float64(i*50), 300)
			}
			_, err := a.CreateSpecificBall(arena.VariantGiant)
			Expect(err).NotTo(HaveOccurred())

			// shorter than an evolutive lifetime so nothing explodes first
			a.SetEventDuration(1)
			Expect(a.ForceEvent(arena.EventRainbow)).To(Succeed())
			advance(a, 1)

			for _, v := range a.Balls() {
				switch v.Kind {
				case arena.KindEvolutive, arena.KindFragment:
					// may regrow on a wall within the expiring tick
					Expect(v.Rainbow).To(BeTrue())
				default:
					Expect(v.Scale).To(Equal(arena.NormalScale))
					Expect(v.Rainbow).To(BeFalse())
				}
			}
		})

		It("notifies observers at both ends", func() {
			var kinds []arena.NoticeKind
			a.AddObserver(arena.ObserverFunc(func(n arena.Notice) {
				if n.Kind == arena.NoticeEventStart || n.Kind == arena.NoticeEventEnd {
					kinds = append(kinds, n.Kind)
					Expect(n.Event).To(Equal(arena.EventSlowed))
				}
			}))
			Expect(a.ForceEvent(arena.EventSlowed)).To(Succeed())
			advance(a, arena.EventDuration)
			Expect(kinds).To(Equal([]arena.NoticeKind{arena.NoticeEventStart, arena.NoticeEventEnd}))
		})
	})

	Describe("random events", func() {
		It("draws only from the random pool", func() {
			seen := map[arena.Event]bool{}
			for i := 0; i < 200; i++ {
				seen[a.RandomEvent()] = true
			}
			Expect(seen).To(HaveLen(len(arena.RandomEvents)))
			Expect(seen).NotTo(HaveKey(arena.EventNone))
		})
	})

	Describe("reset", func() {
		It("clears balls and the event", func() {
			for i := 0; i < 5; i++ {
				a.CreateBallAt(200+float64(i*40), 300)
			}
			Expect(a.ForceEvent(arena.EventSpeed)).To(Succeed())
			a.Reset()

			Expect(a.Balls()).To(BeEmpty())
			Expect(a.ActiveEvent()).To(Equal(arena.EventNone))
			Expect(a.SpeedScale()).To(Equal(1.0))
			Expect(a.Stats().EventRemaining).To(BeZero())
		})
	})

	DescribeTable("parsing event names",
		func(name string, want arena.Event) {
			got, err := arena.ParseEvent(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("upper", "SPEED", arena.EventSpeed),
		Entry("lower", "slowed", arena.EventSlowed),
		Entry("padded", " rainbow ", arena.EventRainbow),
		Entry("giant", "Giant", arena.EventGiant),
		Entry("mini", "mini", arena.EventMini),
	)

	It("rejects unknown event names", func() {
		_, err := arena.ParseEvent("gravity")
		Expect(err).To(MatchError(arena.ErrUnknownEvent))
	})
})

func viewOf(a *arena.Arena, id uint64) arena.BallView {
	for _, v := range a.Balls() {
		if v.ID == id {
			return v
		}
	}
	Fail("ball not found")
	return arena.BallView{}
}
