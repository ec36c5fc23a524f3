package bombe

import (
	"fmt"
	"sync"

	"github.com/forcedentropy/enigma/pkg/enigma"
)

// reflectorsToSweep is fixed to B alone. Reflector C existed and every
// layer below the farm accepts it without change, but the historical
// Bombe search space was restricted to reflector B for nearly the
// entire war (spec §9's design note); the farm preserves that
// restriction rather than doubling the sweep for a reflector that was
// essentially never in play.
var reflectorsToSweep = []enigma.ReflectorName{enigma.ReflectorB}

// Farm runs the full 60-rotor-order sweep for one menu, one goroutine
// per order, joined before returning (spec §4.11). The aggregate order
// of the returned stops reflects goroutine completion order, not the
// canonical rotor-order enumeration: spec §5 only requires the result
// set to match a single order's sweep as a set, not impose a specific
// cross-order ordering.
func Farm(menu *Menu, check bool) ([]Stop, error) {
	orders := enigma.RotorOrderings()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		stops    []Stop
		firstErr error
	)

	for _, order := range orders {
		for _, refl := range reflectorsToSweep {
			order := order
			refl := refl
			wg.Add(1)
			go func() {
				defer wg.Done()

				s, err := newScramblerForOrder(order, refl)
				if err != nil {
					recordFarmError(&mu, &firstErr, order, err)
					return
				}

				configuration := fmt.Sprintf("%s %s %s %s", refl, order[0], order[1], order[2])
				b := NewBombe(menu, s, configuration, check)

				orderStops, err := b.Sweep()
				if err != nil {
					recordFarmError(&mu, &firstErr, order, err)
					return
				}

				mu.Lock()
				stops = append(stops, orderStops...)
				mu.Unlock()
			}()
		}
	}

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return stops, nil
}

func recordFarmError(mu *sync.Mutex, firstErr *error, order [3]enigma.RotorName, err error) {
	mu.Lock()
	defer mu.Unlock()
	if *firstErr == nil {
		*firstErr = fmt.Errorf("rotor order %s %s %s: %w", order[0], order[1], order[2], err)
	}
}

// newScramblerForOrder builds a fresh scrambler cache for one rotor
// order and reflector, reusing the Enigma constructor's historical
// wiring tables rather than duplicating them here.
func newScramblerForOrder(order [3]enigma.RotorName, refl enigma.ReflectorName) (*Scrambler, error) {
	e, err := enigma.New(
		enigma.WithRotors(order[0], order[1], order[2]),
		enigma.WithReflector(refl),
	)
	if err != nil {
		return nil, err
	}
	l, m, r := e.Rotors()
	return NewScrambler(l, m, r, e.Reflector()), nil
}
