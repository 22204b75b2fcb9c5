package session

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"time"

	"github.com/maxwellflitton/adminauth/roles"
)

const sessionFormatVersionCurrent = 1

// Encode serializes a session into the compact binary form stored in Redis:
// a version byte, length-prefixed strings, and big-endian fixed-width
// integers for the numeric fields.
func Encode(s *Session) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte(sessionFormatVersionCurrent)

	if len(s.Key) > 255 {
		return nil, errors.New("key too long")
	}
	buf.WriteByte(byte(len(s.Key)))
	buf.WriteString(s.Key)

	if err := binary.Write(&buf, binary.BigEndian, s.UserID); err != nil {
		return nil, err
	}

	role := string(s.Role)
	if len(role) > 255 {
		return nil, errors.New("role too long")
	}
	buf.WriteByte(byte(len(role)))
	buf.WriteString(role)

	if err := binary.Write(&buf, binary.BigEndian, s.TimeStarted.Unix()); err != nil {
		return nil, err
	}
	if err := binary.Write(&buf, binary.BigEndian, s.TimeExpire.Unix()); err != nil {
		return nil, err
	}

	if len(s.UserAgent) > 65535 {
		return nil, errors.New("user agent too long")
	}
	var agentLen [2]byte
	binary.BigEndian.PutUint16(agentLen[:], uint16(len(s.UserAgent)))
	buf.Write(agentLen[:])
	buf.WriteString(s.UserAgent)

	return buf.Bytes(), nil
}

// Decode parses a binary session blob produced by [Encode].
func Decode(data []byte) (*Session, error) {
	reader := bytes.NewReader(data)

	version, err := reader.ReadByte()
	if err != nil {
		return nil, err
	}
	if version != sessionFormatVersionCurrent {
		return nil, errors.New("invalid session version")
	}

	s := &Session{}

	keyLen, err := reader.ReadByte()
	if err != nil {
		return nil, err
	}
	key := make([]byte, keyLen)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, err
	}
	s.Key = string(key)

	if err := binary.Read(reader, binary.BigEndian, &s.UserID); err != nil {
		return nil, err
	}

	roleLen, err := reader.ReadByte()
	if err != nil {
		return nil, err
	}
	role := make([]byte, roleLen)
	if _, err := io.ReadFull(reader, role); err != nil {
		return nil, err
	}
	s.Role = roles.Role(role)

	var started, expire int64
	if err := binary.Read(reader, binary.BigEndian, &started); err != nil {
		return nil, err
	}
	if err := binary.Read(reader, binary.BigEndian, &expire); err != nil {
		return nil, err
	}
	s.TimeStarted = time.Unix(started, 0).UTC()
	s.TimeExpire = time.Unix(expire, 0).UTC()

	var agentLen uint16
	if err := binary.Read(reader, binary.BigEndian, &agentLen); err != nil {
		return nil, err
	}
	agent := make([]byte, agentLen)
	if _, err := io.ReadFull(reader, agent); err != nil {
		return nil, err
	}
	s.UserAgent = string(agent)

	return s, nil
}
