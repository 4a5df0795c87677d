// Copyright 2025 Sonic Labs
// This file is part of the MCMC sampler toolkit.
//
// The MCMC sampler toolkit is free software: you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// The MCMC sampler toolkit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the MCMC sampler toolkit. If not, see <http://www.gnu.org/licenses/>.

// Package rejection is a generated GoMock package.
package rejection

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockDensity is a mock of Density interface.
type MockDensity struct {
	ctrl     *gomock.Controller
	recorder *MockDensityMockRecorder
	isgomock struct{}
}

// MockDensityMockRecorder is the mock recorder for MockDensity.
type MockDensityMockRecorder struct {
	mock *MockDensity
}

// NewMockDensity creates a new mock instance.
func NewMockDensity(ctrl *gomock.Controller) *MockDensity {
	mock := &MockDensity{ctrl: ctrl}
	mock.recorder = &MockDensityMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockDensity) EXPECT() *MockDensityMockRecorder {
	return m.recorder
}

// Bounds mocks base method.
func (m *MockDensity) Bounds() (float64, float64) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Bounds")
	ret0, _ := ret[0].(float64)
	ret1, _ := ret[1].(float64)
	return ret0, ret1
}

// Bounds indicates an expected call of Bounds.
func (mr *MockDensityMockRecorder) Bounds() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Bounds", reflect.TypeOf((*MockDensity)(nil).Bounds))
}

// Evaluate mocks base method.
func (m *MockDensity) Evaluate(theta float64) float64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Evaluate", theta)
	ret0, _ := ret[0].(float64)
	return ret0
}

// Evaluate indicates an expected call of Evaluate.
func (mr *MockDensityMockRecorder) Evaluate(theta any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Evaluate", reflect.TypeOf((*MockDensity)(nil).Evaluate), theta)
}

// Size mocks base method.
func (m *MockDensity) Size() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Size")
	ret0, _ := ret[0].(int)
	return ret0
}

// Size indicates an expected call of Size.
func (mr *MockDensityMockRecorder) Size() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Size", reflect.TypeOf((*MockDensity)(nil).Size))
}
