package dice

import (
	"testing"

	"github.com/KirkDiggler/dcsim/internal/dice/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ExplodingTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRoller *mocks.MockRoller
}

func (s *ExplodingTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoller = mocks.NewMockRoller(s.mockCtrl)
}

func (s *ExplodingTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestExplodingTestSuite(t *testing.T) {
	suite.Run(t, new(ExplodingTestSuite))
}

func (s *ExplodingTestSuite) TestStopsOnNonMaxRoll() {
	s.mockRoller.EXPECT().Roll(6).Return(3)

	total, err := RollExploding(s.mockRoller, 6)
	s.Require().NoError(err)
	s.Equal(3, total)
}

func (s *ExplodingTestSuite) TestKeepsRollingWhileMax() {
	gomock.InOrder(
		s.mockRoller.EXPECT().Roll(4).Return(4),
		s.mockRoller.EXPECT().Roll(4).Return(4),
		s.mockRoller.EXPECT().Roll(4).Return(4),
		s.mockRoller.EXPECT().Roll(4).Return(1),
	)

	total, err := RollExploding(s.mockRoller, 4)
	s.Require().NoError(err)
	s.Equal(13, total)
}

func (s *ExplodingTestSuite) TestNoCapOnExplosions() {
	// 50 max faces in a row still keep going
	s.mockRoller.EXPECT().Roll(20).Return(20).Times(50)
	s.mockRoller.EXPECT().Roll(20).Return(7)

	total, err := RollExploding(s.mockRoller, 20)
	s.Require().NoError(err)
	s.Equal(50*20+7, total)
}

func (s *ExplodingTestSuite) TestRejectsInvalidSides() {
	for _, sides := range []int{-4, 0, 1} {
		_, err := RollExploding(s.mockRoller, sides)
		s.ErrorIs(err, ErrInvalidDie, "sides %d", sides)
	}
}

func (s *ExplodingTestSuite) TestRejectsNilRoller() {
	_, err := RollExploding(nil, 6)
	s.ErrorIs(err, ErrNilRoller)
}

func (s *ExplodingTestSuite) TestDistributionWithSeededRoller() {
	const samples = 100000
	roller := New(&Config{Seed: 99})

	for _, d := range []Die{D4, D6, D10} {
		sides := d.Sides()
		exploded := 0
		minSeen := -1
		for range samples {
			v, err := RollExploding(roller, sides)
			s.Require().NoError(err)
			s.GreaterOrEqual(v, 1)
			if v > sides {
				exploded++
			}
			if minSeen < 0 || v < minSeen {
				minSeen = v
			}
		}

		s.Equal(1, minSeen, d.String())
		s.InDelta(1/float64(sides), float64(exploded)/samples, 0.01, d.String())
	}
}
